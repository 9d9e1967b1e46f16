// Package paginate produces bounded-width page sequences for pager controls.
//
// Given a current page, a total page count and a sibling count, Sequence returns
// the ordered list of slots a pager should render: the first page, an optional
// collapsed run ("ellipsis"), a window of pages around the current page, an
// optional second collapsed run, and the last page. An ellipsis is only emitted
// when it hides at least two pages; a single skipped page is rendered explicitly.
package paginate

// SlotKind discriminates the entries of a pagination sequence.
type SlotKind int

const (
	// SlotPage is a selectable page number.
	SlotPage SlotKind = iota
	// SlotStartEllipsis collapses hidden pages between the first page and the window.
	SlotStartEllipsis
	// SlotEndEllipsis collapses hidden pages between the window and the last page.
	SlotEndEllipsis
)

// Slot is one entry in a pagination sequence. Page is meaningful only when
// Kind is SlotPage.
type Slot struct {
	Kind SlotKind
	Page int
}

// IsEllipsis reports whether the slot stands for a collapsed run of pages.
func (s Slot) IsEllipsis() bool {
	return s.Kind != SlotPage
}

// Sequence maps (current, total, siblings) to the ordered slot list.
//
// The window budget is siblings*2 + 5: first and last page, the current page,
// the sibling groups on each side and the two ellipsis positions. When total
// fits inside that budget every page is returned and no ellipsis appears.
// A current page outside [1, total] is clamped before the window is computed,
// so degenerate inputs still yield a well-formed sequence.
func Sequence(current, total, siblings int) []Slot {
	if total < 1 {
		return nil
	}
	if siblings < 0 {
		siblings = 0
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	totalSlots := siblings*2 + 5
	if total <= totalSlots {
		return pageRun(1, total)
	}

	leftSibling := current - siblings
	if leftSibling < 1 {
		leftSibling = 1
	}
	rightSibling := current + siblings
	if rightSibling > total {
		rightSibling = total
	}

	// An ellipsis must hide at least two pages. A one-page gap is rendered
	// as that page instead of being collapsed.
	showLeftEllipsis := leftSibling > 3
	showRightEllipsis := rightSibling < total-2
	if !showLeftEllipsis && leftSibling > 2 {
		leftSibling = 2
	}
	if !showRightEllipsis && rightSibling < total-1 {
		rightSibling = total - 1
	}

	slots := make([]Slot, 0, totalSlots)
	if leftSibling > 1 {
		slots = append(slots, Slot{Kind: SlotPage, Page: 1})
	}
	if showLeftEllipsis {
		slots = append(slots, Slot{Kind: SlotStartEllipsis})
	}
	slots = append(slots, pageRun(leftSibling, rightSibling)...)
	if showRightEllipsis {
		slots = append(slots, Slot{Kind: SlotEndEllipsis})
	}
	if rightSibling < total {
		slots = append(slots, Slot{Kind: SlotPage, Page: total})
	}
	return slots
}

// HasPrevious reports whether a "previous" control should be enabled.
func HasPrevious(current int) bool {
	return current > 1
}

// HasNext reports whether a "next" control should be enabled.
func HasNext(current, total int) bool {
	return current < total
}

func pageRun(from, to int) []Slot {
	if to < from {
		return nil
	}
	run := make([]Slot, 0, to-from+1)
	for page := from; page <= to; page++ {
		run = append(run, Slot{Kind: SlotPage, Page: page})
	}
	return run
}
