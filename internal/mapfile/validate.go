package mapfile

import (
	"fmt"

	"cloudeng.io/errors"
	"github.com/alexanderramin/mindplan/internal/domain"
)

// Validate checks the whole tree and reports every problem found: blank or
// duplicate ids, an unsupported version and invalid plan fields.
func Validate(env *Envelope) error {
	errs := &errors.M{}
	if env.Version != domain.SchemaVersion {
		errs.Append(fmt.Errorf("unsupported version %q", env.Version))
	}
	seen := map[string]bool{}
	domain.Walk(env.Root, func(n *domain.Node, _ int, _ *domain.Node) bool {
		switch {
		case n.ID == "":
			errs.Append(fmt.Errorf("node %q has no id", n.Topic))
		case seen[n.ID]:
			errs.Append(fmt.Errorf("duplicate node id %q", n.ID))
		}
		seen[n.ID] = true
		if r := domain.ValidatePlan(domain.PlanOf(n)); !r.Valid() {
			errs.Append(fmt.Errorf("node %q: %w", n.ID, r.Err()))
		}
		return true
	})
	return errs.Err()
}
