// Package theme defines the Brik theme model: the bundle of concrete values a
// theme assigns to the design-token vocabulary, plus the style modifiers
// components use to stay theme-aware.
package theme

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/tokens"
	apperrors "github.com/brikdesigns/brik/pkg/errors"
)

// ColourSet is a semantic colour slot: the colour itself, the colour of
// content placed on it, and a muted companion.
type ColourSet struct {
	Base  lipgloss.AdaptiveColor
	On    lipgloss.AdaptiveColor
	Muted lipgloss.AdaptiveColor
}

// Palette groups the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// Slot provides access to a semantic colour slot of a palette.
type Slot func(Palette) ColourSet

var (
	SlotPrimary   Slot = func(p Palette) ColourSet { return p.Primary }
	SlotSecondary Slot = func(p Palette) ColourSet { return p.Secondary }
	SlotSurface   Slot = func(p Palette) ColourSet { return p.Surface }
	SlotSuccess   Slot = func(p Palette) ColourSet { return p.Success }
	SlotWarning   Slot = func(p Palette) ColourSet { return p.Warning }
	SlotDanger    Slot = func(p Palette) ColourSet { return p.Danger }
	SlotInfo      Slot = func(p Palette) ColourSet { return p.Info }
	SlotNeutral   Slot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups the border shapes a radius token can select.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// Radius selects a border shape from the theme.
type Radius int

const (
	RadiusNone Radius = iota
	RadiusSm
	RadiusMd
	RadiusLg
	RadiusFull
)

// Typography contains the semantic typography presets of a theme.
type Typography struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Caption  lipgloss.Style
}

// Font selects a typography preset.
type Font int

const (
	FontBody Font = iota
	FontTitle
	FontSubtitle
	FontCode
	FontEmphasis
	FontCaption
)

// Theme is the complete value assignment for the token vocabulary. Themes are
// immutable value types; modify a copy and register it under a new name.
type Theme struct {
	Name       string
	Palette    Palette
	Shades     tokens.ShadePalette
	Borders    BorderSet
	Spacing    tokens.SpacingScale
	Typography Typography
}

// Normalize fills zero-valued sections with usable defaults.
func (t Theme) Normalize() Theme {
	if t.Spacing.IsZero() {
		t.Spacing = tokens.DefaultSpacing()
	}
	if t.Borders == (BorderSet{}) {
		t.Borders = defaultBorders()
	}
	return t
}

// Border returns the border shape for a radius token.
func (t Theme) Border(radius Radius) lipgloss.Border {
	switch radius {
	case RadiusSm:
		return t.Borders.Normal
	case RadiusMd:
		return t.Borders.Rounded
	case RadiusLg:
		return t.Borders.Thick
	case RadiusFull:
		return t.Borders.Double
	default:
		return t.Borders.None
	}
}

// Font returns the typography preset for a font token.
func (t Theme) Font(font Font) lipgloss.Style {
	switch font {
	case FontTitle:
		return t.Typography.Title
	case FontSubtitle:
		return t.Typography.Subtitle
	case FontCode:
		return t.Typography.Code
	case FontEmphasis:
		return t.Typography.Emphasis
	case FontCaption:
		return t.Typography.Caption
	default:
		return t.Typography.Body
	}
}

// Resolve maps a token to the display form of its themed value. The second
// return value is false for tokens outside the vocabulary; resolution never
// panics.
func (t Theme) Resolve(token tokens.Token) (string, bool) {
	if set, part, ok := t.colourFor(token); ok {
		colour := set.Base
		switch part {
		case "on":
			colour = set.On
		case "muted":
			colour = set.Muted
		}
		return fmt.Sprintf("%s / %s", colour.Light, colour.Dark), true
	}

	switch token {
	case tokens.SpaceNone, tokens.SpaceXs, tokens.SpaceSm, tokens.SpaceMd,
		tokens.SpaceLg, tokens.SpaceXl, tokens.Space2Xl:
		return strconv.Itoa(t.Spacing.Value(spacingSizeFor(token))), true
	case tokens.RadiusNone:
		return "none", true
	case tokens.RadiusSm:
		return "normal", true
	case tokens.RadiusMd:
		return "rounded", true
	case tokens.RadiusLg:
		return "thick", true
	case tokens.RadiusFull:
		return "double", true
	case tokens.FontTitle, tokens.FontSubtitle, tokens.FontBody,
		tokens.FontCode, tokens.FontEmphasis, tokens.FontCaption:
		return describeStyle(t.Font(fontFor(token))), true
	}
	return "", false
}

// ResolveStrict is Resolve with an error instead of a boolean, for callers
// that surface unknown tokens to the user.
func (t Theme) ResolveStrict(token tokens.Token) (string, error) {
	value, ok := t.Resolve(token)
	if !ok {
		return "", apperrors.NewTokenError(string(token), "not in the token vocabulary")
	}
	return value, nil
}

func (t Theme) colourFor(token tokens.Token) (ColourSet, string, bool) {
	switch token {
	case tokens.ColorPrimaryBase:
		return t.Palette.Primary, "base", true
	case tokens.ColorPrimaryOn:
		return t.Palette.Primary, "on", true
	case tokens.ColorPrimaryMuted:
		return t.Palette.Primary, "muted", true
	case tokens.ColorSecondaryBase:
		return t.Palette.Secondary, "base", true
	case tokens.ColorSecondaryOn:
		return t.Palette.Secondary, "on", true
	case tokens.ColorSecondaryMuted:
		return t.Palette.Secondary, "muted", true
	case tokens.ColorSurfaceBase:
		return t.Palette.Surface, "base", true
	case tokens.ColorSurfaceOn:
		return t.Palette.Surface, "on", true
	case tokens.ColorSurfaceMuted:
		return t.Palette.Surface, "muted", true
	case tokens.ColorSuccessBase:
		return t.Palette.Success, "base", true
	case tokens.ColorSuccessOn:
		return t.Palette.Success, "on", true
	case tokens.ColorWarningBase:
		return t.Palette.Warning, "base", true
	case tokens.ColorWarningOn:
		return t.Palette.Warning, "on", true
	case tokens.ColorDangerBase:
		return t.Palette.Danger, "base", true
	case tokens.ColorDangerOn:
		return t.Palette.Danger, "on", true
	case tokens.ColorInfoBase:
		return t.Palette.Info, "base", true
	case tokens.ColorInfoOn:
		return t.Palette.Info, "on", true
	case tokens.ColorNeutralBase:
		return t.Palette.Neutral, "base", true
	case tokens.ColorNeutralOn:
		return t.Palette.Neutral, "on", true
	case tokens.ColorNeutralMuted:
		return t.Palette.Neutral, "muted", true
	case tokens.ColorBorderDefault:
		return t.Palette.Neutral, "muted", true
	case tokens.ColorBorderFocus:
		return t.Palette.Primary, "base", true
	case tokens.ColorTextPrimary:
		return t.Palette.Surface, "on", true
	case tokens.ColorTextMuted:
		return t.Palette.Neutral, "base", true
	case tokens.ColorTextPlaceholder:
		return t.Palette.Neutral, "muted", true
	}
	return ColourSet{}, "", false
}

func spacingSizeFor(token tokens.Token) tokens.SpacingSize {
	switch token {
	case tokens.SpaceXs:
		return tokens.SpacingXs
	case tokens.SpaceSm:
		return tokens.SpacingSm
	case tokens.SpaceMd:
		return tokens.SpacingMd
	case tokens.SpaceLg:
		return tokens.SpacingLg
	case tokens.SpaceXl:
		return tokens.SpacingXl
	case tokens.Space2Xl:
		return tokens.Spacing2Xl
	default:
		return tokens.SpacingNone
	}
}

func fontFor(token tokens.Token) Font {
	switch token {
	case tokens.FontTitle:
		return FontTitle
	case tokens.FontSubtitle:
		return FontSubtitle
	case tokens.FontCode:
		return FontCode
	case tokens.FontEmphasis:
		return FontEmphasis
	case tokens.FontCaption:
		return FontCaption
	default:
		return FontBody
	}
}

func describeStyle(style lipgloss.Style) string {
	desc := "regular"
	if style.GetBold() {
		desc = "bold"
	}
	if style.GetItalic() {
		desc += " italic"
	}
	if style.GetFaint() {
		desc += " faint"
	}
	return desc
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

// StyleFunc transforms a lipgloss style using data from a theme. It is the
// core abstraction components use for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Apply runs the appliers in order against the base style.
func Apply(base lipgloss.Style, t Theme, appliers ...StyleFunc) lipgloss.Style {
	for _, fn := range appliers {
		base = fn(base, t)
	}
	return base
}

// Background applies a semantic background colour and matching foreground.
func Background(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.On)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies the border shape of a radius token.
func Border(radius Radius) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Border(t.Border(radius))
	}
}

// PaddingX applies horizontal padding from the spacing scale.
func PaddingX(size tokens.SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		value := t.Spacing.Value(size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the spacing scale.
func PaddingY(size tokens.SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		value := t.Spacing.Value(size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// MarginX applies horizontal margin from the spacing scale.
func MarginX(size tokens.SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		value := t.Spacing.Value(size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// WithFont inherits a typography preset.
func WithFont(font Font) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Inherit(t.Font(font))
	}
}
