package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stroke(points ...AtomicAction) UserAction {
	var u UserAction
	for _, p := range points {
		u.Push(p)
	}
	return u
}

func TestHistoryCommitUndoRedo(t *testing.T) {
	h := NewHistory()
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())

	require.NoError(t, h.Commit(stroke(AtomicAction{X: 1})))
	require.NoError(t, h.Commit(stroke(AtomicAction{X: 2}, AtomicAction{X: 3})))
	assert.Equal(t, 2, h.Position())
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanRedo())

	assert.True(t, h.Undo())
	assert.Equal(t, 1, h.Position())
	assert.True(t, h.CanRedo())
	assert.Len(t, h.Applied(), 1)

	assert.True(t, h.Undo())
	assert.False(t, h.Undo())
	assert.Equal(t, 0, h.Position())

	assert.True(t, h.Redo())
	assert.True(t, h.Redo())
	assert.False(t, h.Redo())
	assert.Equal(t, 2, h.Position())
}

func TestHistoryRejectsEmptyAction(t *testing.T) {
	h := NewHistory()
	err := h.Commit(UserAction{})
	assert.True(t, errors.Is(err, ErrEmptyAction))
	assert.Equal(t, 0, h.Len())
}

func TestHistoryCommitTruncatesRedo(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Commit(stroke(AtomicAction{X: 1})))
	require.NoError(t, h.Commit(stroke(AtomicAction{X: 2})))
	require.NoError(t, h.Commit(stroke(AtomicAction{X: 3})))
	h.Undo()
	h.Undo()

	require.NoError(t, h.Commit(stroke(AtomicAction{X: 4})))

	assert.False(t, h.Redo())
	assert.Equal(t, 2, h.Len())
	var xs []int
	h.EachApplied(func(a AtomicAction) { xs = append(xs, a.X) })
	assert.Equal(t, []int{1, 4}, xs)
}

func TestHistoryCommitCopiesAction(t *testing.T) {
	h := NewHistory()
	u := stroke(AtomicAction{X: 1})
	require.NoError(t, h.Commit(u))

	u.Push(AtomicAction{X: 2})
	assert.Equal(t, 1, h.Applied()[0].Len())
}

func TestHistoryString(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Commit(stroke(AtomicAction{X: 10, Y: 20, Color: 0xff0000, Radius: 5})))
	require.NoError(t, h.Commit(stroke(AtomicAction{X: 1, Y: 2, Color: 0xffffff, Radius: 1})))
	h.Undo()

	out := h.String()
	assert.Contains(t, out, "User Action #0\n")
	assert.Contains(t, out, "User Action #1 (undone)")
	assert.Contains(t, out, "point at x: 10 y: 20 with color: ff0000 and brush size: 5")
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Commit(stroke(AtomicAction{X: 1})))
	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Position())
}
