package domain

import (
	"testing"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) *datecalc.Date {
	t.Helper()
	d, err := datecalc.ParseISODate(s)
	require.NoError(t, err)
	return &d
}

func ptr[T any](v T) *T { return &v }

// sampleTree builds:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	├── b
//	└── c
func sampleTree() *Node {
	return &Node{ID: "root", Topic: "Root", Children: []*Node{
		{ID: "a", Topic: "A", Children: []*Node{
			{ID: "a1", Topic: "A1"},
			{ID: "a2", Topic: "A2"},
		}},
		{ID: "b", Topic: "B"},
		{ID: "c", Topic: "C"},
	}}
}

func childIDs(n *Node) []string {
	ids := make([]string, len(n.Children))
	for i, c := range n.Children {
		ids[i] = c.ID
	}
	return ids
}
