package tokens

import "github.com/charmbracelet/lipgloss"

const shadeCount = 10

// Shades holds the ten shade steps of one colour family, 50 through 900.
type Shades struct {
	colors [shadeCount]lipgloss.Color
}

// NewShades builds a Shades value from up to ten colours, lightest first.
func NewShades(colors ...lipgloss.Color) Shades {
	var shades Shades
	for i := 0; i < shadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at the given shade, or "" for out-of-range shades.
func (s Shades) Color(shade Shade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= shadeCount {
		return ""
	}
	return s.colors[index]
}

// Shade selects one step of a shade family.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// Family selects one colour family of the shade palette.
type Family int

const (
	FamilySlate Family = iota
	FamilyBlue
	FamilyGreen
	FamilyRed
	FamilyAmber
	FamilyViolet
)

// ShadePalette is the full shade palette, one family per hue.
type ShadePalette struct {
	Slate  Shades
	Blue   Shades
	Green  Shades
	Red    Shades
	Amber  Shades
	Violet Shades
}

// Shades returns the shade family for the given selector, defaulting to slate.
func (p ShadePalette) Shades(family Family) Shades {
	switch family {
	case FamilyBlue:
		return p.Blue
	case FamilyGreen:
		return p.Green
	case FamilyRed:
		return p.Red
	case FamilyAmber:
		return p.Amber
	case FamilyViolet:
		return p.Violet
	default:
		return p.Slate
	}
}

// DefaultShadePalette returns the Brik shade palette.
func DefaultShadePalette() ShadePalette {
	return ShadePalette{
		Slate: NewShades(
			lipgloss.Color("#f8fafc"),
			lipgloss.Color("#f1f5f9"),
			lipgloss.Color("#e2e8f0"),
			lipgloss.Color("#cbd5e1"),
			lipgloss.Color("#94a3b8"),
			lipgloss.Color("#64748b"),
			lipgloss.Color("#475569"),
			lipgloss.Color("#334155"),
			lipgloss.Color("#1e293b"),
			lipgloss.Color("#0f172a"),
		),
		Blue: NewShades(
			lipgloss.Color("#eff6ff"),
			lipgloss.Color("#dbeafe"),
			lipgloss.Color("#bfdbfe"),
			lipgloss.Color("#93c5fd"),
			lipgloss.Color("#60a5fa"),
			lipgloss.Color("#3b82f6"),
			lipgloss.Color("#2563eb"),
			lipgloss.Color("#1d4ed8"),
			lipgloss.Color("#1e40af"),
			lipgloss.Color("#1e3a8a"),
		),
		Green: NewShades(
			lipgloss.Color("#f0fdf4"),
			lipgloss.Color("#dcfce7"),
			lipgloss.Color("#bbf7d0"),
			lipgloss.Color("#86efac"),
			lipgloss.Color("#4ade80"),
			lipgloss.Color("#22c55e"),
			lipgloss.Color("#16a34a"),
			lipgloss.Color("#15803d"),
			lipgloss.Color("#166534"),
			lipgloss.Color("#14532d"),
		),
		Red: NewShades(
			lipgloss.Color("#fef2f2"),
			lipgloss.Color("#fee2e2"),
			lipgloss.Color("#fecaca"),
			lipgloss.Color("#fca5a5"),
			lipgloss.Color("#f87171"),
			lipgloss.Color("#ef4444"),
			lipgloss.Color("#dc2626"),
			lipgloss.Color("#b91c1c"),
			lipgloss.Color("#991b1b"),
			lipgloss.Color("#7f1d1d"),
		),
		Amber: NewShades(
			lipgloss.Color("#fffbeb"),
			lipgloss.Color("#fef3c7"),
			lipgloss.Color("#fde68a"),
			lipgloss.Color("#fcd34d"),
			lipgloss.Color("#fbbf24"),
			lipgloss.Color("#f59e0b"),
			lipgloss.Color("#d97706"),
			lipgloss.Color("#b45309"),
			lipgloss.Color("#92400e"),
			lipgloss.Color("#78350f"),
		),
		Violet: NewShades(
			lipgloss.Color("#f5f3ff"),
			lipgloss.Color("#ede9fe"),
			lipgloss.Color("#ddd6fe"),
			lipgloss.Color("#c4b5fd"),
			lipgloss.Color("#a78bfa"),
			lipgloss.Color("#8b5cf6"),
			lipgloss.Color("#7c3aed"),
			lipgloss.Color("#6d28d9"),
			lipgloss.Color("#5b21b6"),
			lipgloss.Color("#4c1d95"),
		),
	}
}
