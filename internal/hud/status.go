package hud

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Caption formats the window caption.
func Caption(fps, particles int) string {
	return printer.Sprintf("FPS = %d  particles = %d", fps, particles)
}

// Status formats the headless renderer overlay.
func Status(tick, particles, cached int) string {
	return printer.Sprintf("tick %d  particles %d  cached %d/101", tick, particles, cached)
}
