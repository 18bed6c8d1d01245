// Package viz provides the terminal front end for sigilry.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live glyph-field backdrop with a sigil side panel
//   - [Canvas]: terminal-cell drawing surface with alpha compositing
//   - Theme cycling across the built-in colour schemes
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	N     - New sigil seed
//	T     - Cycle color themes
//	S     - Toggle side panel
//	?     - Show help overlay
//
// Terminal focus stands in for surface visibility: the animation suspends
// while the terminal window is blurred.
package viz
