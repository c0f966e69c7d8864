package store

import (
	"errors"
	"testing"

	"postboard/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_FirstItem(t *testing.T) {
	s := New()

	got, err := s.Append(Candidate{Title: "A", Content: "B"})

	require.NoError(t, err)
	want := []model.Item{{ID: 1, Title: "A", Content: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Append mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_NewestFirst(t *testing.T) {
	s := New()
	_, err := s.Append(Candidate{Title: "A", Content: "B"})
	require.NoError(t, err)

	got, err := s.Append(Candidate{Title: "C", Content: "D"})

	require.NoError(t, err)
	want := []model.Item{
		{ID: 2, Title: "C", Content: "D"},
		{ID: 1, Title: "A", Content: "B"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Append mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_IDIsMaxPlusOne(t *testing.T) {
	s := New()
	for i := range 25 {
		before := s.Items()
		wantID := 1
		for _, it := range before {
			wantID = max(wantID, it.ID+1)
		}

		got, err := s.Append(Candidate{Title: "t", Content: "c"})

		require.NoError(t, err)
		require.Len(t, got, i+1)
		assert.Equal(t, wantID, got[0].ID, "append #%d", i+1)
	}
}

func TestAppend_IDsUnique(t *testing.T) {
	s := New()
	for range 10 {
		_, err := s.Append(Candidate{Title: "t", Content: "c"})
		require.NoError(t, err)
	}
	seen := make(map[int]bool)
	for _, it := range s.Items() {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}

func TestAppend_NoOwner(t *testing.T) {
	s := New()
	got, err := s.Append(Candidate{Title: "t", Content: "c"})
	require.NoError(t, err)
	_, ok := got[0].Owner()
	assert.False(t, ok)
}

func TestAppend_RejectsMalformedText(t *testing.T) {
	tests := []struct {
		name  string
		c     Candidate
		field string
	}{
		{"bad title", Candidate{Title: "\xff\xfe", Content: "ok"}, "title"},
		{"bad content", Candidate{Title: "ok", Content: "a\xc3"}, "content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			_, err := s.Append(Candidate{Title: "keep", Content: "me"})
			require.NoError(t, err)

			got, err := s.Append(tt.c)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrPrecondition))
			var pe *PreconditionError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
			assert.Equal(t, 1, s.Len(), "store must be unchanged")
		})
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := New()
	_, err := s.Append(Candidate{Title: "A", Content: "B"})
	require.NoError(t, err)

	items := s.Items()
	items[0].Title = "mutated"

	assert.Equal(t, "A", s.Items()[0].Title)
}
