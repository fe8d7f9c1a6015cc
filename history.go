package main

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyAction = errors.New("user action has no atomic actions")

// AtomicAction is one brush dab, in canvas coordinates.
type AtomicAction struct {
	X      int
	Y      int
	Color  uint32
	Radius int
}

func (a AtomicAction) String() string {
	return fmt.Sprintf("point at x: %d y: %d with color: %06x and brush size: %d",
		a.X, a.Y, a.Color, a.Radius)
}

// UserAction groups the atomic actions of one gesture.
type UserAction struct {
	atomics []AtomicAction
}

func (u *UserAction) Push(a AtomicAction) {
	u.atomics = append(u.atomics, a)
}

func (u *UserAction) Len() int { return len(u.atomics) }

func (u *UserAction) Empty() bool { return len(u.atomics) == 0 }

func (u *UserAction) Atomics() []AtomicAction { return u.atomics }

// History is a linear undo log. actions[:cursor] are applied, the rest can
// be redone until the next commit.
type History struct {
	actions []UserAction
	cursor  int
}

func NewHistory() *History {
	return &History{}
}

// Commit drops any redoable actions and appends u. Callers must not commit
// empty actions.
func (h *History) Commit(u UserAction) error {
	if u.Empty() {
		return ErrEmptyAction
	}
	frozen := UserAction{atomics: append([]AtomicAction(nil), u.atomics...)}
	clear(h.actions[h.cursor:])
	h.actions = append(h.actions[:h.cursor], frozen)
	h.cursor++
	return nil
}

func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

func (h *History) Redo() bool {
	if h.cursor == len(h.actions) {
		return false
	}
	h.cursor++
	return true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.actions) }

// Position is the number of applied user actions.
func (h *History) Position() int { return h.cursor }

func (h *History) Len() int { return len(h.actions) }

func (h *History) Applied() []UserAction { return h.actions[:h.cursor] }

// EachApplied visits every applied atomic action in commit order.
func (h *History) EachApplied(fn func(AtomicAction)) {
	for _, u := range h.Applied() {
		for _, a := range u.atomics {
			fn(a)
		}
	}
}

func (h *History) Reset() {
	h.actions = nil
	h.cursor = 0
}

func (h *History) String() string {
	var sb strings.Builder
	for i, u := range h.actions {
		marker := ""
		if i >= h.cursor {
			marker = " (undone)"
		}
		fmt.Fprintf(&sb, "User Action #%d%s\n", i, marker)
		for j, a := range u.atomics {
			fmt.Fprintf(&sb, "\tAtomic Action #%d\n\t\t%s\n", j, a)
		}
	}
	return sb.String()
}
