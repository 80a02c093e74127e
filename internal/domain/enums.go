package domain

type PlanStatus string

const (
	StatusNotStarted PlanStatus = "Not Started"
	StatusInProgress PlanStatus = "In Progress"
	StatusCompleted  PlanStatus = "Completed"
)

// PlanStatusOptions is the canonical, ordered set of accepted statuses.
var PlanStatusOptions = []PlanStatus{StatusNotStarted, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of PlanStatusOptions.
func (s PlanStatus) Valid() bool {
	for _, opt := range PlanStatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}

// PlanField names one attribute under extended.plan. Values match the JSON keys.
type PlanField string

const (
	FieldStartDate    PlanField = "startDate"
	FieldDueDate      PlanField = "dueDate"
	FieldInvestedTime PlanField = "investedTimeHours"
	FieldElapsedTime  PlanField = "elapsedTimeDays"
	FieldAssignee     PlanField = "assignee"
	FieldStatus       PlanField = "status"
)

// PlanFields lists every plan field in form order.
var PlanFields = []PlanField{
	FieldStartDate, FieldDueDate, FieldInvestedTime,
	FieldElapsedTime, FieldAssignee, FieldStatus,
}

const (
	// SchemaVersion is written into every saved map envelope.
	SchemaVersion = "1.0.0"
	// DefaultMapTitle names maps created without a title.
	DefaultMapTitle = "Untitled Map"
	// PathSeparator joins ancestor topics into a breadcrumb.
	PathSeparator = " > "
	// PerfWarningNodeCount is the node count above which large-map warnings are shown.
	PerfWarningNodeCount = 500
	// MaxAssigneeLen bounds the assignee name.
	MaxAssigneeLen = 100
)
