package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mindplan/internal/domain"
)

// resolveMap finds a map by full ID, unique ID prefix or title
// (case-insensitive).
func resolveMap(ctx context.Context, app *App, input string) (*domain.Map, error) {
	maps, err := app.Maps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing maps: %w", err)
	}
	var byPrefix, byTitle []*domain.Map
	for _, m := range maps {
		if m.ID == input {
			return m, nil
		}
		if strings.HasPrefix(m.ID, input) {
			byPrefix = append(byPrefix, m)
		}
		if strings.EqualFold(m.Title, input) {
			byTitle = append(byTitle, m)
		}
	}
	return pickOne("map", input, byPrefix, byTitle)
}

// resolveNode finds a node of root by full ID, unique ID prefix or topic
// (case-insensitive).
func resolveNode(root *domain.Node, input string) (*domain.Node, error) {
	if n := domain.Find(root, input); n != nil {
		return n, nil
	}
	var byPrefix, byTopic []*domain.Node
	domain.Walk(root, func(n *domain.Node, _ int, _ *domain.Node) bool {
		if strings.HasPrefix(n.ID, input) {
			byPrefix = append(byPrefix, n)
		}
		if strings.EqualFold(n.Topic, input) {
			byTopic = append(byTopic, n)
		}
		return true
	})
	return pickOne("node", input, byPrefix, byTopic)
}

func pickOne[T any](kind, input string, byPrefix, byName []T) (T, error) {
	var zero T
	if input == "" {
		return zero, fmt.Errorf("empty %s reference", kind)
	}
	for _, candidates := range [][]T{byPrefix, byName} {
		switch len(candidates) {
		case 0:
			continue
		case 1:
			return candidates[0], nil
		default:
			return zero, fmt.Errorf("%s %q is ambiguous (%d matches)", kind, input, len(candidates))
		}
	}
	return zero, fmt.Errorf("no %s matches %q", kind, input)
}

// resolveMapNode resolves a map reference and a node reference inside it.
func resolveMapNode(ctx context.Context, app *App, mapRef, nodeRef string) (*domain.Map, *domain.Node, error) {
	m, err := resolveMap(ctx, app, mapRef)
	if err != nil {
		return nil, nil, err
	}
	n, err := resolveNode(m.Root, nodeRef)
	if err != nil {
		return nil, nil, err
	}
	return m, n, nil
}
