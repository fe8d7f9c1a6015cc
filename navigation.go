package main

// handlePan moves the camera for a navigation key. speed is in terminal
// cells; a cell is one pixel wide and two pixels tall.
func (m *model) handlePan(key string, speed int) error {
	if m.session == nil {
		return nil
	}
	dx, dy := 0, 0
	switch key {
	case "h", "left", "H", "shift+left":
		dx = -speed
	case "l", "right", "L", "shift+right":
		dx = speed
	case "k", "up", "K", "shift+up":
		dy = -speed * 2
	case "j", "down", "J", "shift+down":
		dy = speed * 2
	default:
		return nil
	}
	return m.session.move(dx, dy)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		if m.config != nil && m.config.ScrollStep > 0 {
			return m.config.ScrollStep
		}
		return defaultScrollStep
	default:
		return 1
	}
}

func isNavigationKey(key string) bool {
	switch key {
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		return true
	}
	return false
}
