package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/db"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/repository"
)

// PlanEdit is a partial update of one node's plan.
type PlanEdit struct {
	Patch domain.PlanPatch
	// ExcludeWeekends selects business-day counting for derived fields.
	ExcludeWeekends bool
}

// PlanView is a node's plan with its computed indicators.
type PlanView struct {
	NodeID   string
	Topic    string
	Path     []string
	Plan     domain.PlanAttributes
	Flags    domain.PlanFlags
	Derived  []domain.PlanField
	Warnings []string
}

type planService struct {
	maps     repository.MapRepo
	store    mapStore
	observer UseCaseObserver
	today    func() datecalc.Date
}

// NewPlanService builds the plan use cases. today supplies the date that
// overdue flags are computed against; nil means the local clock.
func NewPlanService(
	maps repository.MapRepo,
	uow db.UnitOfWork,
	historyLimit int,
	today func() datecalc.Date,
	observers ...UseCaseObserver,
) PlanService {
	if today == nil {
		today = func() datecalc.Date { return datecalc.FromTime(time.Now()) }
	}
	return &planService{
		maps:     maps,
		store:    mapStore{uow: uow, historyLimit: historyLimit},
		observer: useCaseObserverOrNoop(observers),
		today:    today,
	}
}

func (s *planService) EditPlan(ctx context.Context, mapID, nodeID string, edit PlanEdit) (view *PlanView, err error) {
	fields := map[string]any{
		"map_id":           mapID,
		"node_id":          nodeID,
		"exclude_weekends": edit.ExcludeWeekends,
	}
	done := observe(ctx, s.observer, "edit-plan", fields)
	defer func() { done(err) }()

	var derived []domain.PlanField
	var warnings []string
	m, err := s.store.mutate(ctx, mapID, "edit plan", func(root *domain.Node) (*domain.Node, error) {
		n, err := findNode(root, nodeID)
		if err != nil {
			return nil, err
		}
		before := domain.PlanOf(n)
		if err := checkPlan(edit.Patch.Apply(before)); err != nil {
			return nil, err
		}
		var after domain.PlanAttributes
		after, derived, err = derivePlan(before, edit)
		if err != nil {
			return nil, err
		}
		if err := checkPlan(after); err != nil {
			return nil, err
		}
		warnings = domain.ValidatePlan(after).Warnings
		if n.Extended == nil {
			n.Extended = &domain.Extended{}
		}
		n.Extended.Plan = &after
		return root, nil
	})
	if err != nil {
		return nil, err
	}
	fields["derived"] = len(derived)

	view, err = s.viewOf(m.Root, nodeID)
	if err != nil {
		return nil, err
	}
	view.Derived = derived
	view.Warnings = warnings
	return view, nil
}

func (s *planService) ClearPlan(ctx context.Context, mapID, nodeID string) (err error) {
	done := observe(ctx, s.observer, "clear-plan", map[string]any{"map_id": mapID, "node_id": nodeID})
	defer func() { done(err) }()

	_, err = s.store.mutate(ctx, mapID, "clear plan", func(root *domain.Node) (*domain.Node, error) {
		n, err := findNode(root, nodeID)
		if err != nil {
			return nil, err
		}
		domain.ClearPlan(n)
		return root, nil
	})
	return err
}

func (s *planService) GetPlan(ctx context.Context, mapID, nodeID string) (*PlanView, error) {
	m, err := s.maps.GetByID(ctx, mapID)
	if err != nil {
		return nil, err
	}
	view, err := s.viewOf(m.Root, nodeID)
	if err != nil {
		return nil, err
	}
	view.Warnings = domain.ValidatePlan(view.Plan).Warnings
	return view, nil
}

func (s *planService) viewOf(root *domain.Node, nodeID string) (*PlanView, error) {
	n, err := findNode(root, nodeID)
	if err != nil {
		return nil, err
	}
	plan := domain.PlanOf(n)
	return &PlanView{
		NodeID: n.ID,
		Topic:  n.Topic,
		Path:   domain.Path(root, nodeID),
		Plan:   plan,
		Flags:  domain.FlagsOf(plan, s.today()),
	}, nil
}

// checkPlan rejects user input before any field is derived from it.
func checkPlan(p domain.PlanAttributes) error {
	if r := domain.ValidatePlan(p); !r.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, strings.Join(r.Errors, "; "))
	}
	return nil
}
