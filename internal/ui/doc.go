// Package ui contains the Bubble Tea program that shows the dirnav help
// screen. The Model type focuses on message orchestration, while dedicated
// helpers own key translation, action dispatch, search input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are translated into key combinations (keypress.go) and
//     resolved against the live keymap in the Search or NotSearch context,
//     depending on whether a search query is active. Resolved actions are
//     dispatched in actions.go; unclaimed printable keys extend the search
//     (input.go).
//   - Window size changes reflow the help document at the new width. A
//     keymap watcher, when configured, streams rebuilt keymaps that replace
//     the current one and re-render the shortcut table (watch.go).
//
// State ownership:
//   - Rendered lines, cursor, viewport, and search query live in
//     internal/ui/state.Pager.
//   - The active keymap lives in a keymap.Store, so a reload swaps the whole
//     map and a render always reads one consistent snapshot.
package ui
