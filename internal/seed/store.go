package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when the stored seed document is not a JSON array.
var ErrMalformed = errors.New("malformed seed data")

// Entry is the shape of the default seed entries. Stored entries are served
// as-is and may carry other fields.
type Entry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Store reads the seed list. Load is called on every request; nothing is
// cached. Each element is returned exactly as stored.
type Store interface {
	Load(ctx context.Context) ([]json.RawMessage, error)
	// Ensure writes Defaults when no seed document exists yet. It never
	// overwrites an existing document and reports whether it created one.
	Ensure(ctx context.Context) (bool, error)
}

// Defaults returns the three entries written on first start.
func Defaults() []Entry {
	return []Entry{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com"},
	}
}

func encode(entries []Entry) ([]byte, error) {
	return json.MarshalIndent(entries, "", "    ")
}

func decode(b []byte) ([]json.RawMessage, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if entries == nil {
		if !bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
			return nil, ErrMalformed
		}
		entries = []json.RawMessage{}
	}
	return entries, nil
}
