package router

import (
	"slices"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
)

// Stack holds the names of the pages that have been pushed, base first.
// The base entry is fixed at construction and can never be popped, so the
// stack is never empty.
type Stack struct {
	entries []binding.PageName
}

// NewStack creates a stack whose floor is base.
func NewStack(base binding.PageName) *Stack {
	entries := make([]binding.PageName, 1, 4)
	entries[0] = base
	return &Stack{entries: entries}
}

// Push adds name on top. Pushing the name already on top is a no-op and
// reports false.
func (s *Stack) Push(name binding.PageName) bool {
	if s.Peek() == name {
		return false
	}
	s.entries = append(s.entries, name)
	return true
}

// Pop removes the top entry unless it is the floor. It reports whether an
// entry was removed.
func (s *Stack) Pop() bool {
	if len(s.entries) <= 1 {
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return true
}

// Peek returns the top entry.
func (s *Stack) Peek() binding.PageName {
	return s.entries[len(s.entries)-1]
}

// Base returns the floor entry.
func (s *Stack) Base() binding.PageName {
	return s.entries[0]
}

// Len returns the number of entries, always at least one.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Names returns a copy of the entries, base first.
func (s *Stack) Names() []binding.PageName {
	return slices.Clone(s.entries)
}

// Reset drops everything above the floor.
func (s *Stack) Reset() {
	s.entries = s.entries[:1]
}
