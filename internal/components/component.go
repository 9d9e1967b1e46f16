// Package components provides the Brik visual component library: declarative,
// theme-aware terminal UI elements that map a small props struct and the
// active theme to a rendered string.
//
// Components hold no global state. View renders with the light theme;
// ViewWithTheme renders with an explicit one, so several themes can coexist
// in one program and tests stay deterministic.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
)

// Position aligns a component inside the width granted by its parent.
type Position int

const (
	PositionStart Position = iota
	PositionCenter
	PositionEnd
)

func (p Position) lipgloss() lipgloss.Position {
	switch p {
	case PositionCenter:
		return lipgloss.Center
	case PositionEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Variant selects the semantic colour slot of a component.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantSuccess
	VariantWarning
	VariantDanger
	VariantInfo
	VariantNeutral
)

func (v Variant) slot() theme.Slot {
	switch v {
	case VariantSecondary:
		return theme.SlotSecondary
	case VariantSuccess:
		return theme.SlotSuccess
	case VariantWarning:
		return theme.SlotWarning
	case VariantDanger:
		return theme.SlotDanger
	case VariantInfo:
		return theme.SlotInfo
	case VariantNeutral:
		return theme.SlotNeutral
	default:
		return theme.SlotPrimary
	}
}
