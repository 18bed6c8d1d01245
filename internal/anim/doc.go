// Package anim drives the animated glyph field.
//
// A [Renderer] owns all scheduling state: the user pause toggle, the
// visibility flag, the reduced-motion preference, the surface size and the
// simulation clock. Hosts wire it to their event sources through three
// collaborators:
//
//   - [Surface]: a 2-D drawing context (terminal cells, raster image, ...)
//   - [TickSource]: per-frame scheduling opportunities
//   - [Observer]: visibility and resize notifications
//
// # Scheduling
//
// Frames are requested only while the renderer is running and visible. Each
// opportunity is throttled to the configured frame rate; accepted frames
// advance the clock by a fixed step regardless of wall-clock time. Resumed
// animation continues from the next opportunity, missed frames are dropped.
//
// # Thread Safety
//
// Renderer is NOT thread-safe. All callbacks must arrive on one goroutine,
// which is how bubbletea and [ManualTicks] deliver them.
package anim
