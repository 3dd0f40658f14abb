package selection

// ChangeFunc receives the complete ordered list of selected values after a
// mutating operation.
type ChangeFunc func(values []string)

// Config carries the caller-owned inputs of a Controller.
type Config struct {
	Options         []Option
	SelectedOptions []string
	OnChange        ChangeFunc
	// SelectionLimit caps the number of selected values. Zero means no limit.
	SelectionLimit int
}

// Controller derives the selected options from caller-owned state and turns
// user intents into OnChange calls. It never stores a selection of its own
// beyond the projection of the last synced values.
type Controller struct {
	catalog  []Option
	values   []string
	selected []Option
	onChange ChangeFunc
	limit    int
}

// New constructs a Controller from the provided configuration.
func New(cfg Config) *Controller {
	c := &Controller{onChange: cfg.OnChange}
	c.SetLimit(cfg.SelectionLimit)
	c.Sync(cfg.Options, cfg.SelectedOptions)
	return c
}

// Sync replaces the catalog and selected values and recomputes the
// projection. Hosts call it whenever either input changes.
func (c *Controller) Sync(catalog []Option, selected []string) {
	c.catalog = catalog
	c.values = selected
	c.selected = Project(catalog, selected)
}

// SetOnChange swaps the change callback. A nil callback makes the controller
// read-only.
func (c *Controller) SetOnChange(fn ChangeFunc) {
	c.onChange = fn
}

// SetLimit updates the selection limit. Negative values disable the limit.
func (c *Controller) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	c.limit = limit
}

// Limit returns the configured selection limit, zero when unlimited.
func (c *Controller) Limit() int {
	return c.limit
}

// ReadOnly reports whether mutating operations are disabled.
func (c *Controller) ReadOnly() bool {
	return c.onChange == nil
}

// Catalog returns the catalog the controller was last synced with.
func (c *Controller) Catalog() []Option {
	return c.catalog
}

// Selected returns the projected selection in selection order.
func (c *Controller) Selected() []Option {
	return CloneOptions(c.selected)
}

// SelectedValues returns the values of the projected selection.
func (c *Controller) SelectedValues() []string {
	return Values(c.selected)
}

// Count returns the number of projected selected options.
func (c *Controller) Count() int {
	return len(c.selected)
}

// AllSelected reports whether every catalog value is selected. An empty
// catalog counts as fully selected.
func (c *Controller) AllSelected() bool {
	if len(c.selected) < countUnique(c.catalog) {
		return false
	}
	for _, opt := range c.catalog {
		if !c.IsSelected(opt.Value) {
			return false
		}
	}
	return true
}

func countUnique(options []Option) int {
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		seen[opt.Value] = struct{}{}
	}
	return len(seen)
}

// IsSelected reports whether value is part of the projected selection.
func (c *Controller) IsSelected(value string) bool {
	return IndexOfValue(c.selected, value) >= 0
}

// LimitReached reports whether no further value may be appended.
func (c *Controller) LimitReached() bool {
	return c.limit > 0 && len(c.selected) >= c.limit
}

// CanToggle reports whether Toggle would be accepted for value.
func (c *Controller) CanToggle(value string) bool {
	if c.ReadOnly() || IndexOfValue(c.catalog, value) < 0 {
		return false
	}
	if c.IsSelected(value) {
		return true
	}
	return !c.LimitReached()
}

// SelectAllEnabled reports whether the select-all control is available.
func (c *Controller) SelectAllEnabled() bool {
	return !c.ReadOnly() && c.limit == 0
}

// Toggle removes the option from the selection when present and appends it
// otherwise. Options outside the catalog and appends beyond the limit are
// rejected.
func (c *Controller) Toggle(opt Option) bool {
	if !c.CanToggle(opt.Value) {
		return false
	}
	current := Values(c.selected)
	if idx := IndexOfValue(c.selected, opt.Value); idx >= 0 {
		next := make([]string, 0, len(current))
		for _, value := range current {
			if value != opt.Value {
				next = append(next, value)
			}
		}
		return c.emit(next)
	}
	return c.emit(append(current, opt.Value))
}

// SelectAll selects every catalog option in catalog order.
func (c *Controller) SelectAll() bool {
	if !c.SelectAllEnabled() {
		return false
	}
	return c.emit(Values(c.catalog))
}

// ClearAll empties the selection.
func (c *Controller) ClearAll() bool {
	return c.emit([]string{})
}

// ToggleAll clears the selection when everything is selected and selects
// everything otherwise.
func (c *Controller) ToggleAll() bool {
	if c.AllSelected() {
		return c.ClearAll()
	}
	return c.SelectAll()
}

// RemoveAt drops the selected entry at index. Out of range indices are
// ignored.
func (c *Controller) RemoveAt(index int) bool {
	if c.ReadOnly() {
		return false
	}
	next, ok := RemoveIndex(Values(c.selected), index)
	if !ok {
		return false
	}
	return c.emit(next)
}

// Move relocates the selected entry at from to position to and emits the
// whole reordered selection.
func (c *Controller) Move(from, to int) bool {
	if c.ReadOnly() {
		return false
	}
	next, ok := MoveItem(Values(c.selected), from, to)
	if !ok {
		return false
	}
	return c.emit(next)
}

func (c *Controller) emit(values []string) bool {
	if c.onChange == nil {
		return false
	}
	c.onChange(values)
	return true
}
