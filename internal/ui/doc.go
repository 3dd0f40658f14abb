// Package ui contains the Bubble Tea program that powers the multi-select
// picker. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, search input, rendering and selection updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, debounce ticks, catalog reloads, delivery results).
//   - Key presses either move focus between the option list and the tag row,
//     act on the focused element, or edit the draft search text
//     (internal/ui/input.go).
//   - Draft edits never filter directly. They trigger the search debouncer and
//     schedule a searchSettleMsg; only the tick carrying the latest token
//     applies the draft. Ticks arriving after teardown are dropped.
//
// State ownership:
//   - The selected values live in a state.SelectionStore owned by the caller.
//     The selection.Controller never mutates it; its OnChange writes the store
//     and the model re-syncs the controller from it.
//   - List concerns (search text, cursor, viewport, tag focus) live in
//     internal/ui/state.List.
//   - Catalog reloads arrive from a backend.Watcher and are applied through the
//     dispatcher, after which the list and controller are re-synced.
//
// Submitting hands the selected values to the command bus, which delivers them
// to the configured output sink before the program quits.
package ui
