package selection

// Option is a selectable catalog entry.
type Option struct {
	Label string
	Value string
}

// Values returns the option values in order.
func Values(options []Option) []string {
	values := make([]string, len(options))
	for i, opt := range options {
		values[i] = opt.Value
	}
	return values
}

// IndexOfValue returns the position of the first option carrying value, or -1.
func IndexOfValue(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// CloneOptions produces a shallow copy of the provided options.
func CloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	dup := make([]Option, len(options))
	copy(dup, options)
	return dup
}

// Project looks every selected value up in the catalog and returns the
// matching options in selection order. Values missing from the catalog are
// dropped and repeated selected values keep their first position. Duplicate
// catalog values resolve to their first occurrence.
func Project(catalog []Option, selected []string) []Option {
	if len(selected) == 0 {
		return nil
	}
	index := make(map[string]int, len(catalog))
	for i := len(catalog) - 1; i >= 0; i-- {
		index[catalog[i].Value] = i
	}
	projected := make([]Option, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		idx, ok := index[value]
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		projected = append(projected, catalog[idx])
	}
	return projected
}

// UniqueValues returns values without repeats, keeping first occurrences.
func UniqueValues(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
