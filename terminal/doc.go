// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for the race canvas.
//
// Features:
//   - Absolute cursor positioning and visibility control
//   - Clipped, per-write serialized canvas output shared by concurrent lanes
//   - True color (24-bit) and 256-color foreground support
//   - Terminal size discovery and crash-time restoration
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
