package domain

import "time"

// Node is one topic of a mind map. The JSON shape follows the saved map
// format, so unknown rendering fields (style, tags) round-trip untouched.
type Node struct {
	ID       string         `json:"id"`
	Topic    string         `json:"topic"`
	Children []*Node        `json:"children,omitempty"`
	Expanded *bool          `json:"expanded,omitempty"`
	Style    map[string]any `json:"style,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Extended *Extended      `json:"extended,omitempty"`
}

// Extended holds data attached to a node outside the core mind-map fields.
type Extended struct {
	Plan *PlanAttributes `json:"plan,omitempty"`
}

// Map is a stored mind map document.
type Map struct {
	ID        string
	Title     string
	Version   string
	Root      *Node
	CreatedAt time.Time
	UpdatedAt time.Time
}
