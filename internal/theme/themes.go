package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/tokens"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Light returns the light theme, the system default.
func Light() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:  ac("#3b82f6", "#60a5fa"),
			On:    ac("#f8fafc", "#0b1120"),
			Muted: ac("#2563eb", "#1d4ed8"),
		},
		Secondary: ColourSet{
			Base:  ac("#8b5cf6", "#a78bfa"),
			On:    ac("#f8fafc", "#1f2937"),
			Muted: ac("#7c3aed", "#6d28d9"),
		},
		Surface: ColourSet{
			Base:  ac("#f9fafb", "#111827"),
			On:    ac("#111827", "#f9fafb"),
			Muted: ac("#e2e8f0", "#1f2937"),
		},
		Success: ColourSet{
			Base:  ac("#22c55e", "#4ade80"),
			On:    ac("#052e16", "#022c22"),
			Muted: ac("#16a34a", "#15803d"),
		},
		Warning: ColourSet{
			Base:  ac("#f59e0b", "#fbbf24"),
			On:    ac("#422006", "#422006"),
			Muted: ac("#d97706", "#b45309"),
		},
		Danger: ColourSet{
			Base:  ac("#ef4444", "#f87171"),
			On:    ac("#fef2f2", "#450a0a"),
			Muted: ac("#dc2626", "#b91c1c"),
		},
		Info: ColourSet{
			Base:  ac("#06b6d4", "#22d3ee"),
			On:    ac("#083344", "#04121a"),
			Muted: ac("#0891b2", "#0e7490"),
		},
		Neutral: ColourSet{
			Base:  ac("#64748b", "#94a3b8"),
			On:    ac("#f1f5f9", "#0f172a"),
			Muted: ac("#475569", "#334155"),
		},
	}

	t := Theme{
		Name:       "light",
		Palette:    palette,
		Shades:     tokens.DefaultShadePalette(),
		Spacing:    tokens.DefaultSpacing(),
		Typography: typographyFor(palette),
	}
	return t.Normalize()
}

// Dark returns the dark theme variant.
func Dark() Theme {
	t := Light()
	t.Name = "dark"

	t.Palette.Surface = ColourSet{
		Base:  ac("#111827", "#0b1120"),
		On:    ac("#f9fafb", "#e5e7eb"),
		Muted: ac("#1f2937", "#111827"),
	}
	t.Palette.Neutral = ColourSet{
		Base:  ac("#475569", "#334155"),
		On:    ac("#e5e7eb", "#cbd5e1"),
		Muted: ac("#374151", "#1f2937"),
	}

	t.Typography = typographyFor(t.Palette)
	return t.Normalize()
}

// Brik returns the brand theme used in marketing previews.
func Brik() Theme {
	t := Light()
	t.Name = "brik"

	t.Palette.Primary = ColourSet{
		Base:  ac("#e11d48", "#fb7185"),
		On:    ac("#fff1f2", "#4c0519"),
		Muted: ac("#be123c", "#9f1239"),
	}
	t.Palette.Secondary = ColourSet{
		Base:  ac("#0f172a", "#e2e8f0"),
		On:    ac("#f8fafc", "#0f172a"),
		Muted: ac("#1e293b", "#cbd5e1"),
	}

	t.Typography = typographyFor(t.Palette)
	return t.Normalize()
}

func typographyFor(p Palette) Typography {
	base := lipgloss.NewStyle().Foreground(p.Surface.On)

	return Typography{
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Caption:  base.Faint(true),
	}
}

var builtin = map[string]func() Theme{
	"light": Light,
	"dark":  Dark,
	"brik":  Brik,
}

// Named returns a built-in theme by name.
func Named(name string) (Theme, bool) {
	build, ok := builtin[name]
	if !ok {
		return Theme{}, false
	}
	return build(), true
}

// Names lists the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
