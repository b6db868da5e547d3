// Package ui contains the Bubble Tea program that draws the title bar and its
// application menu. The Model owns terminal concerns only; menu navigation is
// delegated to a nav.Engine.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key messages are translated into nav.KeyEvent presses and releases and
//     published on a nav.Broadcaster the engine subscribes to. Alt chords are
//     wrapped in Alt down/up events, and the configured menu key (F10 by
//     default) stands in for a bare Alt tap.
//   - Mouse messages are hit tested against the frame layout (layout.go) and
//     forwarded to the engine as button hover/click, item hover/click or
//     click-away.
//   - When the engine activates a leaf, the menu closes and the item's action
//     is resolved through menu.Registry and executed via the command bus. The
//     resulting menu.ActionResult updates the status line.
//
// Rendering:
//   - The bar row holds the menu buttons, the centred window title and the
//     window controls (left on macOS, where no in-window menu is drawn).
//   - Open menus are drawn as bordered dropdowns overlaid on the body.
//   - The engine's overflow split decides which buttons are drawn and when
//     the overflow marker appears.
package ui
