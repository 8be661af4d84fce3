// Package config centralizes the tunable parameters of the terminal host.
package config

import "time"

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS

	// MaxFrameDelta caps the elapsed time handed to a tick so a stalled
	// connection does not spin the ship through several turns at once.
	MaxFrameDelta = 100 * time.Millisecond
)

// Layout
const (
	HUDRows       = 1 // Terminal rows above the playfield
	MinCanvasSide = 8 // Smallest playfield in terminal columns
)

// Ship decorations, in plane units
const (
	FlareRadius       = 2
	WarningSquareSize = 10
)
