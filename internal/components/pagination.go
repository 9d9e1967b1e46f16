package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/paginate"
	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// PaginationOptions defines the configuration options for a pager control.
type PaginationOptions struct {
	Current  int
	Total    int
	Siblings int
	Position Position
	// OnChange is invoked with the new page when a selectable slot or a
	// navigation control is activated.
	OnChange func(page int)
}

// Pagination renders a bounded-width pager: previous/next arrows around the
// slot sequence produced by the paginate package.
type Pagination struct {
	options PaginationOptions
	width   int
}

// NewPagination creates a pager with the given options.
func NewPagination(opts PaginationOptions) *Pagination {
	if opts.Siblings < 0 {
		opts.Siblings = 0
	}
	return &Pagination{options: opts}
}

// WithWidth sets the width the pager is aligned within. Zero disables
// alignment.
func (p *Pagination) WithWidth(width int) *Pagination {
	p.width = width
	return p
}

// Slots returns the current slot sequence.
func (p *Pagination) Slots() []paginate.Slot {
	return paginate.Sequence(p.options.Current, p.options.Total, p.options.Siblings)
}

// PreviousDisabled reports the disabled state of the previous control.
func (p *Pagination) PreviousDisabled() bool {
	return !paginate.HasPrevious(p.options.Current)
}

// NextDisabled reports the disabled state of the next control.
func (p *Pagination) NextDisabled() bool {
	return !paginate.HasNext(p.options.Current, p.options.Total)
}

// Previous moves one page back. At the first page it is a no-op.
func (p *Pagination) Previous() {
	if p.PreviousDisabled() {
		return
	}
	p.change(p.options.Current - 1)
}

// Next moves one page forward. At the last page it is a no-op.
func (p *Pagination) Next() {
	if p.NextDisabled() {
		return
	}
	p.change(p.options.Current + 1)
}

// Select activates a slot. Selecting the current page or an ellipsis is a
// no-op; any other page number invokes the change callback.
func (p *Pagination) Select(slot paginate.Slot) {
	if slot.IsEllipsis() || slot.Page == p.options.Current {
		return
	}
	p.change(slot.Page)
}

// Current returns the current page.
func (p *Pagination) Current() int {
	return p.options.Current
}

func (p *Pagination) change(page int) {
	p.options.Current = page
	if p.options.OnChange != nil {
		p.options.OnChange(page)
	}
}

// View renders the pager with the light theme.
func (p *Pagination) View() string {
	return p.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the pager with the given theme.
func (p *Pagination) ViewWithTheme(t theme.Theme) string {
	slotStyle := theme.Apply(lipgloss.NewStyle(), t,
		theme.PaddingX(tokens.SpacingXs),
	)
	currentStyle := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(theme.SlotPrimary),
		theme.PaddingX(tokens.SpacingXs),
		theme.WithFont(theme.FontEmphasis),
	)
	ellipsisStyle := lipgloss.NewStyle().Foreground(t.Palette.Neutral.Muted)
	arrowStyle := slotStyle
	disabledArrow := lipgloss.NewStyle().Foreground(t.Palette.Neutral.Muted).Faint(true).PaddingLeft(1).PaddingRight(1)

	var cells []string

	prev := arrowStyle.Render("‹")
	if p.PreviousDisabled() {
		prev = disabledArrow.Render("‹")
	}
	cells = append(cells, prev)

	for _, slot := range p.Slots() {
		switch {
		case slot.IsEllipsis():
			cells = append(cells, ellipsisStyle.Render("…"))
		case slot.Page == p.options.Current:
			cells = append(cells, currentStyle.Render(strconv.Itoa(slot.Page)))
		default:
			cells = append(cells, slotStyle.Render(strconv.Itoa(slot.Page)))
		}
	}

	next := arrowStyle.Render("›")
	if p.NextDisabled() {
		next = disabledArrow.Render("›")
	}
	cells = append(cells, next)

	row := strings.Join(cells, "")
	if p.width > 0 {
		row = lipgloss.PlaceHorizontal(p.width, p.options.Position.lipgloss(), row)
	}
	return row
}
