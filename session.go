package main

import (
	"errors"

	"go.uber.org/zap"
)

var ErrGestureActive = errors.New("another gesture is in progress")

// session ties a canvas to its history and the state of the current
// gesture. Drawing and dragging never overlap.
type session struct {
	canvas     *Canvas
	history    *History
	brush      brush
	blend      Blend
	pending    UserAction
	drawing    bool
	drag       dragState
	scrollStep int
	logger     *zap.Logger
}

func newSession(canvas *Canvas, cfg *Config, logger *zap.Logger) *session {
	return &session{
		canvas:     canvas,
		history:    NewHistory(),
		brush:      brush{color: cfg.BrushColor, size: cfg.BrushSize},
		blend:      blendByName(cfg.Brush),
		scrollStep: cfg.ScrollStep,
		logger:     logger,
	}
}

func (s *session) mode() Mode {
	switch {
	case s.drawing:
		return ModeDrawing
	case s.drag.active:
		return ModeDragging
	}
	return ModeNormal
}

// beginStroke starts a stroke at the screen position (x, y).
func (s *session) beginStroke(x, y int) error {
	if s.drag.active {
		return ErrGestureActive
	}
	s.drawing = true
	s.pending = UserAction{}
	s.addPoint(x, y)
	return nil
}

func (s *session) extendStroke(x, y int) {
	if !s.drawing {
		return
	}
	s.addPoint(x, y)
}

// endStroke commits the pending stroke. It reports whether anything was
// committed.
func (s *session) endStroke() (bool, error) {
	if !s.drawing {
		return false, nil
	}
	s.drawing = false
	stroke := s.pending
	s.pending = UserAction{}
	if stroke.Empty() {
		return false, nil
	}
	if err := s.history.Commit(stroke); err != nil {
		return false, err
	}
	s.logger.Info("stroke committed",
		zap.Int("atomics", stroke.Len()),
		zap.Int("history", s.history.Len()))
	return true, nil
}

func (s *session) addPoint(x, y int) {
	cx, cy := s.canvas.ScreenToCanvas(x, y)
	s.pending.Push(AtomicAction{X: cx, Y: cy, Color: s.brush.color, Radius: s.brush.size})
	s.canvas.PaintDisc(cx, cy, s.brush.color, s.brush.size, s.blend)
}

func (s *session) beginDrag(x, y int) error {
	if s.drawing {
		return ErrGestureActive
	}
	s.drag = dragState{active: true, last: Vector2{X: x, Y: y}}
	return nil
}

// dragTo moves the camera so the canvas follows the pointer.
func (s *session) dragTo(x, y int) error {
	if !s.drag.active {
		return nil
	}
	dx, dy := s.drag.last.X-x, s.drag.last.Y-y
	s.drag.last = Vector2{X: x, Y: y}
	return s.move(dx, dy)
}

func (s *session) endDrag() {
	s.drag = dragState{}
}

// scroll moves the camera along the scroll axis by whole steps.
func (s *session) scroll(steps int) error {
	d := steps * s.scrollStep
	if s.canvas.Direction() == DirectionHorizontal {
		return s.move(d, 0)
	}
	return s.move(0, d)
}

// move shifts the camera. Every camera change goes through the session so
// the canvas can be brought back in line with the history when it grows.
func (s *session) move(dx, dy int) error {
	before := s.canvas.Chunks()
	if err := s.canvas.Move(dx, dy); err != nil {
		return err
	}
	s.syncGrowth(before)
	return nil
}

func (s *session) resizeViewport(width, height int) error {
	before := s.canvas.Chunks()
	if err := s.canvas.SetViewport(width, height); err != nil {
		return err
	}
	s.syncGrowth(before)
	return nil
}

// syncGrowth repaints after new chunks appear. Dabs that fell outside the
// chain when they were painted now land on the new chunks, exactly as a
// replay would put them.
func (s *session) syncGrowth(before int) {
	if s.canvas.Chunks() == before {
		return
	}
	if s.history.Position() == 0 && s.pending.Empty() {
		return
	}
	n := Replay(s.canvas, s.history, s.blend)
	for _, a := range s.pending.Atomics() {
		s.canvas.PaintDisc(a.X, a.Y, a.Color, a.Radius, s.blend)
	}
	s.logger.Debug("canvas repainted after growth",
		zap.Int("chunks", s.canvas.Chunks()),
		zap.Int("replayed", n),
		zap.Int("pending", s.pending.Len()))
}

func (s *session) setColor(c uint32) {
	s.brush.color = c & 0xffffff
}

func (s *session) resizeBrush(delta int) {
	s.brush.size = clampInt(s.brush.size+delta, minBrushSize, maxBrushSize)
}

func (s *session) colorAt(x, y int) (uint32, bool) {
	return s.canvas.ScreenPixelAt(x, y)
}

func (s *session) close() {
	s.canvas.Destroy()
	s.history.Reset()
}
