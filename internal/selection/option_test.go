package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectPreservesSelectionOrder(t *testing.T) {
	got := Project(fruit, []string{"3", "1"})
	assert.Equal(t, []Option{fruit[2], fruit[0]}, got)
}

func TestProjectDropsUnknownValues(t *testing.T) {
	selected := []string{"4", "2", "nope", "1"}
	got := Project(fruit, selected)
	assert.LessOrEqual(t, len(got), len(selected))
	assert.Equal(t, []string{"2", "1"}, Values(got))
}

func TestProjectUsesFirstCatalogOccurrence(t *testing.T) {
	catalog := []Option{{Label: "first", Value: "v"}, {Label: "second", Value: "v"}}
	got := Project(catalog, []string{"v"})
	assert.Equal(t, []Option{{Label: "first", Value: "v"}}, got)
}

func TestProjectEmptySelection(t *testing.T) {
	assert.Empty(t, Project(fruit, nil))
	assert.Empty(t, Project(nil, []string{"1"}))
}

func TestMoveItem(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	got, ok := MoveItem(items, 1, 3)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c", "d", "b"}, got)

	got, ok = MoveItem(items, 3, 0)
	assert.True(t, ok)
	assert.Equal(t, []string{"d", "a", "b", "c"}, got)

	got, ok = MoveItem(items, 2, 2)
	assert.True(t, ok)
	assert.Equal(t, items, got)

	_, ok = MoveItem(items, 4, 0)
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "d"}, items, "input must not be modified")
}

func TestMoveItemMatchesRemoveThenInsert(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}
	for from := range items {
		for to := range items {
			removed, _ := RemoveIndex(items, from)
			want := make([]int, 0, len(items))
			want = append(want, removed[:to]...)
			want = append(want, items[from])
			want = append(want, removed[to:]...)
			got, ok := MoveItem(items, from, to)
			assert.True(t, ok)
			assert.Equal(t, want, got, "move %d -> %d", from, to)
		}
	}
}

func TestRemoveIndex(t *testing.T) {
	got, ok := RemoveIndex([]string{"a", "b", "c"}, 0)
	assert.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, got)

	got, ok = RemoveIndex([]string{"a"}, -1)
	assert.False(t, ok)
	assert.Equal(t, []string{"a"}, got)
}

func TestProjectKeepsFirstOfRepeatedValues(t *testing.T) {
	got := Project(fruit, []string{"2", "1", "2"})
	assert.Equal(t, []string{"2", "1"}, Values(got))
}

func TestUniqueValues(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, UniqueValues([]string{"b", "a", "b", "a"}))
	assert.Nil(t, UniqueValues(nil))
}
