// Package hud provides host overlays for the smoke demos: a running-average
// frame-rate meter, status strings and a text label painter.
package hud
