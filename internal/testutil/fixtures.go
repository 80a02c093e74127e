package testutil

import (
	"time"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/google/uuid"
)

// Node options
type NodeOption func(*domain.Node)

func WithNodeID(id string) NodeOption {
	return func(n *domain.Node) {
		n.ID = id
	}
}

func WithChildren(children ...*domain.Node) NodeOption {
	return func(n *domain.Node) {
		n.Children = append(n.Children, children...)
	}
}

func WithStartDate(iso string) NodeOption {
	return withPlan(func(p *domain.PlanAttributes) {
		d := mustParse(iso)
		p.StartDate = &d
	})
}

func WithDueDate(iso string) NodeOption {
	return withPlan(func(p *domain.PlanAttributes) {
		d := mustParse(iso)
		p.DueDate = &d
	})
}

func WithElapsedDays(n int) NodeOption {
	return withPlan(func(p *domain.PlanAttributes) {
		p.ElapsedTimeDays = &n
	})
}

func WithInvestedHours(h float64) NodeOption {
	return withPlan(func(p *domain.PlanAttributes) {
		p.InvestedTimeHours = &h
	})
}

func WithAssignee(name string) NodeOption {
	return withPlan(func(p *domain.PlanAttributes) {
		p.Assignee = &name
	})
}

func WithStatus(s domain.PlanStatus) NodeOption {
	return withPlan(func(p *domain.PlanAttributes) {
		p.Status = &s
	})
}

func withPlan(set func(*domain.PlanAttributes)) NodeOption {
	return func(n *domain.Node) {
		if n.Extended == nil {
			n.Extended = &domain.Extended{}
		}
		if n.Extended.Plan == nil {
			n.Extended.Plan = &domain.PlanAttributes{}
		}
		set(n.Extended.Plan)
	}
}

func mustParse(iso string) datecalc.Date {
	d, err := datecalc.ParseISODate(iso)
	if err != nil {
		panic(err)
	}
	return d
}

func NewTestNode(topic string, opts ...NodeOption) *domain.Node {
	n := &domain.Node{
		ID:    uuid.New().String(),
		Topic: topic,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Map options
type MapOption func(*domain.Map)

func WithRoot(root *domain.Node) MapOption {
	return func(m *domain.Map) {
		m.Root = root
	}
}

func WithUpdatedAt(t time.Time) MapOption {
	return func(m *domain.Map) {
		m.UpdatedAt = t
	}
}

// NewTestMap returns a map whose root topic is the title.
func NewTestMap(title string, opts ...MapOption) *domain.Map {
	now := time.Now().UTC()
	m := &domain.Map{
		ID:        uuid.New().String(),
		Title:     title,
		Version:   domain.SchemaVersion,
		Root:      NewTestNode(title),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
