// Package selection holds the state model behind the multi-select picker.
//
// The package never owns what is selected. Callers supply the catalog of
// options and the ordered list of selected values on every change, and the
// Controller derives the selected options from them (Project). Every mutating
// operation computes the next ordered value list and hands it to the caller's
// ChangeFunc; the caller stores it and feeds it back through Controller.Sync.
//
// Filtering is a pure function of the catalog and the applied search text.
// Debouncing of the search text lives with the host (see internal/search).
package selection
