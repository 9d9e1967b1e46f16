package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pages(slots []Slot) []int {
	var out []int
	for _, slot := range slots {
		if slot.Kind == SlotPage {
			out = append(out, slot.Page)
		}
	}
	return out
}

func kinds(slots []Slot) []SlotKind {
	out := make([]SlotKind, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.Kind)
	}
	return out
}

func TestSequenceReturnsAllPagesWhenTheyFit(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		siblings int
	}{
		{"single page", 1, 1, 1},
		{"exactly at budget", 3, 7, 1},
		{"below budget", 3, 5, 1},
		{"zero siblings", 2, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Sequence(tt.current, tt.total, tt.siblings)
			require.Len(t, slots, tt.total)
			for i, slot := range slots {
				assert.Equal(t, SlotPage, slot.Kind)
				assert.Equal(t, i+1, slot.Page)
			}
		})
	}
}

func TestSequenceMiddleWindow(t *testing.T) {
	slots := Sequence(44, 80, 1)

	require.Equal(t, []SlotKind{
		SlotPage, SlotStartEllipsis, SlotPage, SlotPage, SlotPage, SlotEndEllipsis, SlotPage,
	}, kinds(slots))
	assert.Equal(t, []int{1, 43, 44, 45, 80}, pages(slots))
}

func TestSequenceNoEllipsisBelowThreshold(t *testing.T) {
	slots := Sequence(3, 5, 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pages(slots))
	for _, slot := range slots {
		assert.False(t, slot.IsEllipsis())
	}
}

func TestSequenceSinglePage(t *testing.T) {
	slots := Sequence(1, 1, 1)
	require.Len(t, slots, 1)
	assert.Equal(t, Slot{Kind: SlotPage, Page: 1}, slots[0])
	assert.False(t, HasPrevious(1))
	assert.False(t, HasNext(1, 1))
}

func TestSequenceBoundaryCurrentHasSingleEllipsis(t *testing.T) {
	start := Sequence(1, 80, 1)
	assert.Equal(t, []SlotKind{SlotPage, SlotPage, SlotEndEllipsis, SlotPage}, kinds(start))
	assert.Equal(t, []int{1, 2, 80}, pages(start))

	end := Sequence(80, 80, 1)
	assert.Equal(t, []SlotKind{SlotPage, SlotStartEllipsis, SlotPage, SlotPage}, kinds(end))
	assert.Equal(t, []int{1, 79, 80}, pages(end))
}

func TestSequenceOnePageGapIsShownExplicitly(t *testing.T) {
	// A window starting at page 3 leaves only page 2 hidden, which must be
	// rendered instead of collapsed.
	slots := Sequence(4, 80, 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 80}, pages(slots))
	assert.Equal(t, []SlotKind{
		SlotPage, SlotPage, SlotPage, SlotPage, SlotPage, SlotEndEllipsis, SlotPage,
	}, kinds(slots))

	slots = Sequence(77, 80, 1)
	assert.Equal(t, []int{1, 76, 77, 78, 79, 80}, pages(slots))
}

func TestSequenceTwoPageGapCollapses(t *testing.T) {
	slots := Sequence(5, 80, 1)
	assert.Equal(t, []int{1, 4, 5, 6, 80}, pages(slots))
	assert.Equal(t, SlotStartEllipsis, slots[1].Kind)
}

func TestSequenceClampsOutOfRangeCurrent(t *testing.T) {
	low := Sequence(-3, 20, 1)
	assert.Equal(t, pages(Sequence(1, 20, 1)), pages(low))

	high := Sequence(99, 20, 1)
	assert.Equal(t, pages(Sequence(20, 20, 1)), pages(high))
}

func TestSequenceZeroTotal(t *testing.T) {
	assert.Nil(t, Sequence(1, 0, 1))
}

func TestSequenceProperties(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for siblings := 0; siblings <= 3; siblings++ {
			for current := 1; current <= total; current++ {
				slots := Sequence(current, total, siblings)

				numeric := pages(slots)
				require.NotEmpty(t, numeric)
				assert.Equal(t, 1, numeric[0], "sequence must start at page 1")
				assert.Equal(t, total, numeric[len(numeric)-1], "sequence must end at the last page")
				assert.Contains(t, numeric, current)

				seen := make(map[int]bool, len(numeric))
				prev := 0
				for _, page := range numeric {
					assert.False(t, seen[page], "duplicate page %d (total=%d current=%d siblings=%d)", page, total, current, siblings)
					seen[page] = true
					assert.Greater(t, page, prev, "pages must be strictly increasing")
					prev = page
				}

				// Every ellipsis must hide at least two pages: the numeric
				// neighbours around it differ by more than two.
				for i, slot := range slots {
					if !slot.IsEllipsis() {
						continue
					}
					require.Greater(t, i, 0)
					require.Less(t, i, len(slots)-1)
					gap := slots[i+1].Page - slots[i-1].Page - 1
					assert.GreaterOrEqual(t, gap, 2, "ellipsis hiding %d pages (total=%d current=%d siblings=%d)", gap, total, current, siblings)
				}
			}
		}
	}
}

func TestNavigationState(t *testing.T) {
	assert.False(t, HasPrevious(1))
	assert.True(t, HasPrevious(2))
	assert.True(t, HasNext(1, 2))
	assert.False(t, HasNext(2, 2))
	assert.False(t, HasNext(3, 2))
}
