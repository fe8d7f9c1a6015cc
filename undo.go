package main

import "go.uber.org/zap"

// Replay clears the canvas and paints every applied atomic action again.
// It returns the number of actions replayed.
func Replay(c *Canvas, h *History, blend Blend) int {
	c.Clear()
	n := 0
	h.EachApplied(func(a AtomicAction) {
		c.PaintDisc(a.X, a.Y, a.Color, a.Radius, blend)
		n++
	})
	return n
}

func (s *session) undo() bool {
	if s.drawing || !s.history.Undo() {
		return false
	}
	n := Replay(s.canvas, s.history, s.blend)
	s.logger.Info("undo",
		zap.Int("position", s.history.Position()),
		zap.Int("replayed", n))
	s.logger.Debug("history", zap.Stringer("actions", s.history))
	return true
}

func (s *session) redo() bool {
	if s.drawing || !s.history.Redo() {
		return false
	}
	n := Replay(s.canvas, s.history, s.blend)
	s.logger.Info("redo",
		zap.Int("position", s.history.Position()),
		zap.Int("replayed", n))
	s.logger.Debug("history", zap.Stringer("actions", s.history))
	return true
}
