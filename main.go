package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "rc file to read instead of ~/.zincrc")
	direction := flag.String("d", "", "scroll direction: horizontal or vertical")
	logFile := flag.String("log", "", "write logs to this file")
	showVersion := flag.Bool("v", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("zinc version " + version)
		return
	}
	if flag.NArg() > 0 {
		log.Fatalf("unexpected argument: %s", flag.Arg(0))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *direction != "" {
		cfg.Direction = strings.ToLower(*direction)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(
		initialModel(cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}
	if m, ok := final.(model); ok {
		if m.session != nil {
			m.session.close()
		}
		logger.Sync()
		if m.err != nil {
			log.Fatal(m.err)
		}
	}
}

func initialModel(cfg *Config, logger *zap.Logger) model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return model{
		config: cfg,
		logger: logger,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// viewportPixels converts a terminal size to a pixel viewport, keeping the
// last row for the status line.
func viewportPixels(width, height int) (int, int) {
	return max(width, 1), max(height-1, 1) * 2
}

func (m model) resize(width, height int) (tea.Model, tea.Cmd) {
	m.width, m.height = width, height
	vw, vh := viewportPixels(width, height)

	if m.session == nil {
		m.backend = newTermBackend(m.config.VoidColor)
		canvas, err := NewCanvas(m.config.canvasOptions(vw, vh), m.backend, m.logger)
		if err != nil {
			return m.fail(err)
		}
		m.session = newSession(canvas, m.config, m.logger)
	}

	if err := m.session.resizeViewport(vw, vh); err != nil {
		return m.fail(err)
	}
	return m.render()
}

func (m model) render() (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	if err := m.session.canvas.Render(); err != nil {
		return m.fail(err)
	}
	return m, nil
}

// fail stops the program. The error is reported once the terminal is
// restored.
func (m model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.logger.Error("session aborted", zap.Error(err))
	return m, tea.Quit
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.help {
		return m, nil
	}
	s := m.session
	x, y := msg.X, msg.Y*2
	m.pointer = Vector2{X: x, Y: y}

	var err error
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			err = s.beginStroke(x, y)
		case tea.MouseButtonMiddle, tea.MouseButtonRight:
			err = s.beginDrag(x, y)
		case tea.MouseButtonWheelUp:
			err = s.scroll(-1)
		case tea.MouseButtonWheelDown:
			err = s.scroll(1)
		}
	case tea.MouseActionMotion:
		s.extendStroke(x, y)
		err = s.dragTo(x, y)
	case tea.MouseActionRelease:
		_, err = s.endStroke()
		s.endDrag()
	}

	if errors.Is(err, ErrGestureActive) {
		return m, nil
	}
	if err != nil {
		return m.fail(err)
	}
	return m.render()
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		switch key {
		case "?", "esc":
			m.help = false
		case "ctrl+q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "ctrl+q", "esc":
		return m, tea.Quit
	case "?":
		m.help = true
		return m, nil
	}

	if m.session == nil {
		return m, nil
	}
	s := m.session
	m.errorMessage, m.successMessage = "", ""

	switch {
	case key == "ctrl+z":
		if !s.undo() {
			m.errorMessage = m.refusal(s.history.CanUndo(), "Nothing to undo")
		}
	case key == "ctrl+y" || key == "ctrl+r":
		if !s.redo() {
			m.errorMessage = m.refusal(s.history.CanRedo(), "Nothing to redo")
		}
	case key == "[":
		s.resizeBrush(-1)
	case key == "]":
		s.resizeBrush(1)
	case key == "ctrl+e":
		m.export()
	case key == "ctrl+c":
		m.copyPointerColor()
	case key == "ctrl+v":
		m.pasteBrushColor()
	case isNavigationKey(key):
		if err := m.handlePan(key, m.getMoveSpeed(key)); err != nil {
			return m.fail(err)
		}
	default:
		if c, ok := palette[key]; ok {
			s.setColor(c)
		}
	}
	return m.render()
}

// refusal explains why undo or redo did nothing.
func (m *model) refusal(possible bool, empty string) string {
	if possible {
		return "Finish the stroke first"
	}
	return empty
}

func (m *model) export() {
	canvas := m.session.canvas
	path, err := m.config.GetSavePath(exportFilename(time.Now()))
	if err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		m.logger.Warn("export failed", zap.Error(err))
		return
	}
	if err := exportPNG(canvas, path, exportCaption(canvas), m.config.VoidColor); err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		m.logger.Warn("export failed", zap.Error(err))
		return
	}
	m.successMessage = "Exported " + path
	m.logger.Info("export written", zap.String("path", path))
}

func (m *model) copyPointerColor() {
	c, ok := m.session.colorAt(m.pointer.X, m.pointer.Y)
	if !ok {
		m.errorMessage = "No pixel under the pointer"
		return
	}
	if err := copyColor(c); err != nil {
		m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.successMessage = "Copied " + formatHex(c)
}

func (m *model) pasteBrushColor() {
	c, err := pasteColor()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
		return
	}
	m.session.setColor(c)
	m.successMessage = "Brush " + formatHex(c)
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d0d0d0")).
			Background(lipgloss.Color("#262626"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	helpStyle    = lipgloss.NewStyle().Padding(1, 2)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.session == nil {
		return ""
	}
	return m.backend.View() + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	s := m.session
	cam := s.canvas.Camera()
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(formatHex(s.brush.color))).
		Render("  ")
	info := fmt.Sprintf(" %s  size:%d  x:%d y:%d  chunks:%d  history:%d/%d ",
		m.modeString(), s.brush.size, cam.X, cam.Y,
		s.canvas.Chunks(), s.history.Position(), s.history.Len())

	line := swatch + statusStyle.Render(info)
	switch {
	case m.errorMessage != "":
		line += " " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		line += " " + successStyle.Render(m.successMessage)
	}
	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(line)
}

func (m model) modeString() string {
	if m.session == nil {
		return "NORMAL"
	}
	switch m.session.mode() {
	case ModeDrawing:
		return "DRAW"
	case ModeDragging:
		return "DRAG"
	default:
		return "NORMAL"
	}
}

func (m model) helpView() string {
	lines := []string{
		"zinc " + version,
		"",
		"left button        draw",
		"middle/right drag  move the canvas",
		"wheel              scroll",
		"arrows, hjkl       pan (shift: faster)",
		"r g b w q o y f t c  brush colour",
		"[ ]                brush size",
		"ctrl+z / ctrl+y    undo / redo",
		"ctrl+e             export the view as PNG",
		"ctrl+c / ctrl+v    copy colour under pointer / paste brush colour",
		"?                  toggle help",
		"esc, ctrl+q        quit",
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}
