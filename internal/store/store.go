// Package store holds the records a user creates during a session.
package store

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"postboard/internal/model"
)

// ErrPrecondition is matched by every PreconditionError.
var ErrPrecondition = errors.New("precondition violated")

// PreconditionError reports a malformed Append candidate.
type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("append: %s %s", e.Field, e.Reason)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// Candidate is the input to Append. Fields are stored as given; trimming and
// blank checks belong to the caller.
type Candidate struct {
	Title   string
	Content string
}

// ListStore is an ordered, id-assigning collection of user-created items,
// newest first. It is not safe for concurrent use; the UI event loop is the
// only writer.
type ListStore struct {
	items []model.Item
}

// New creates an empty store.
func New() *ListStore {
	return &ListStore{}
}

// Append assigns the next id (max existing id + 1, or 1 when empty), inserts
// the item at the front and returns a copy of the collection. A candidate with
// a field that is not well-formed UTF-8 text is rejected and the store is left
// unchanged.
func (s *ListStore) Append(c Candidate) ([]model.Item, error) {
	if !utf8.ValidString(c.Title) {
		return nil, &PreconditionError{Field: "title", Reason: "is not valid UTF-8 text"}
	}
	if !utf8.ValidString(c.Content) {
		return nil, &PreconditionError{Field: "content", Reason: "is not valid UTF-8 text"}
	}

	item := model.Item{
		ID:      s.nextID(),
		Title:   c.Title,
		Content: c.Content,
	}
	s.items = append([]model.Item{item}, s.items...)
	return s.Items(), nil
}

// Items returns a copy of the collection, newest first.
func (s *ListStore) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *ListStore) Len() int {
	return len(s.items)
}

func (s *ListStore) nextID() int {
	maxID := 0
	for _, it := range s.items {
		maxID = max(maxID, it.ID)
	}
	return maxID + 1
}
