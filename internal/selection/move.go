package selection

// MoveItem returns a copy of items with the element at from moved to position
// to. Out of range indices return an unchanged copy and false.
func MoveItem[T any](items []T, from, to int) ([]T, bool) {
	moved := make([]T, len(items))
	copy(moved, items)
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return moved, false
	}
	if from == to {
		return moved, true
	}
	item := moved[from]
	if from < to {
		copy(moved[from:to], moved[from+1:to+1])
	} else {
		copy(moved[to+1:from+1], moved[to:from])
	}
	moved[to] = item
	return moved, true
}

// RemoveIndex returns a copy of items without the element at index. An out of
// range index returns an unchanged copy and false.
func RemoveIndex[T any](items []T, index int) ([]T, bool) {
	if index < 0 || index >= len(items) {
		dup := make([]T, len(items))
		copy(dup, items)
		return dup, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, true
}
