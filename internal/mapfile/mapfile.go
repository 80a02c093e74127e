// Package mapfile reads and writes the versioned mind-map save format:
// a JSON envelope holding a schema version and the root node.
package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON format")
	ErrMissingFields = errors.New("missing required fields (version, root)")
)

// Envelope is the top-level save-file object.
type Envelope struct {
	Version string       `json:"version"`
	Root    *domain.Node `json:"root"`
}

// Serialize wraps root in an envelope at the current schema version and
// encodes it with two-space indentation.
func Serialize(root *domain.Node) ([]byte, error) {
	env := Envelope{Version: domain.SchemaVersion, Root: root}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding map: %w", err)
	}
	return data, nil
}

// Deserialize decodes a save file. Only the presence of version and root is
// checked; use Validate for the node contents.
func Deserialize(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if env.Version == "" || env.Root == nil {
		return nil, ErrMissingFields
	}
	return &env, nil
}

// Load reads and decodes the save file at path.
func Load(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	env, err := Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return env, nil
}

// Save writes root to path, replacing any existing file.
func Save(path string, root *domain.Node) error {
	data, err := Serialize(root)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing map file: %w", err)
	}
	return nil
}

// NewNodeID returns a random node identifier.
func NewNodeID() string {
	return uuid.New().String()
}

var whitespace = regexp.MustCompile(`\s+`)

// StableID derives a readable id from a label: whitespace runs become
// underscores, the result is lower-cased and suffixed with now in Unix
// milliseconds.
func StableID(label string, now time.Time) string {
	slug := strings.ToLower(whitespace.ReplaceAllString(label, "_"))
	return fmt.Sprintf("%s_%d", slug, now.UnixMilli())
}
