// Package tokens defines the design-token vocabulary of the Brik design system.
//
// A token is a named, themeable design value. Components never hard-code
// colours, spacing or typography; they reference tokens, and the active theme
// supplies the concrete values.
package tokens

// Token is a dot-path token name, the key a theme resolves to a value.
type Token string

// Colour tokens organized by semantic role.
const (
	ColorPrimaryBase     Token = "color.primary.base"
	ColorPrimaryOn       Token = "color.primary.on"
	ColorPrimaryMuted    Token = "color.primary.muted"
	ColorSecondaryBase   Token = "color.secondary.base"
	ColorSecondaryOn     Token = "color.secondary.on"
	ColorSecondaryMuted  Token = "color.secondary.muted"
	ColorSurfaceBase     Token = "color.surface.base"
	ColorSurfaceOn       Token = "color.surface.on"
	ColorSurfaceMuted    Token = "color.surface.muted"
	ColorSuccessBase     Token = "color.success.base"
	ColorSuccessOn       Token = "color.success.on"
	ColorWarningBase     Token = "color.warning.base"
	ColorWarningOn       Token = "color.warning.on"
	ColorDangerBase      Token = "color.danger.base"
	ColorDangerOn        Token = "color.danger.on"
	ColorInfoBase        Token = "color.info.base"
	ColorInfoOn          Token = "color.info.on"
	ColorNeutralBase     Token = "color.neutral.base"
	ColorNeutralOn       Token = "color.neutral.on"
	ColorNeutralMuted    Token = "color.neutral.muted"
	ColorBorderDefault   Token = "color.border.default"
	ColorBorderFocus     Token = "color.border.focus"
	ColorTextPrimary     Token = "color.text.primary"
	ColorTextMuted       Token = "color.text.muted"
	ColorTextPlaceholder Token = "color.text.placeholder"
)

// Spacing tokens.
const (
	SpaceNone Token = "space.none"
	SpaceXs   Token = "space.xs"
	SpaceSm   Token = "space.sm"
	SpaceMd   Token = "space.md"
	SpaceLg   Token = "space.lg"
	SpaceXl   Token = "space.xl"
	Space2Xl  Token = "space.2xl"
)

// Radius tokens select a border shape.
const (
	RadiusNone Token = "radius.none"
	RadiusSm   Token = "radius.sm"
	RadiusMd   Token = "radius.md"
	RadiusLg   Token = "radius.lg"
	RadiusFull Token = "radius.full"
)

// Typography tokens.
const (
	FontTitle    Token = "font.title"
	FontSubtitle Token = "font.subtitle"
	FontBody     Token = "font.body"
	FontCode     Token = "font.code"
	FontEmphasis Token = "font.emphasis"
	FontCaption  Token = "font.caption"
)

// All lists every token in the vocabulary in a stable order, for the token
// dump command and for exhaustiveness checks.
func All() []Token {
	return []Token{
		ColorPrimaryBase, ColorPrimaryOn, ColorPrimaryMuted,
		ColorSecondaryBase, ColorSecondaryOn, ColorSecondaryMuted,
		ColorSurfaceBase, ColorSurfaceOn, ColorSurfaceMuted,
		ColorSuccessBase, ColorSuccessOn,
		ColorWarningBase, ColorWarningOn,
		ColorDangerBase, ColorDangerOn,
		ColorInfoBase, ColorInfoOn,
		ColorNeutralBase, ColorNeutralOn, ColorNeutralMuted,
		ColorBorderDefault, ColorBorderFocus,
		ColorTextPrimary, ColorTextMuted, ColorTextPlaceholder,
		SpaceNone, SpaceXs, SpaceSm, SpaceMd, SpaceLg, SpaceXl, Space2Xl,
		RadiusNone, RadiusSm, RadiusMd, RadiusLg, RadiusFull,
		FontTitle, FontSubtitle, FontBody, FontCode, FontEmphasis, FontCaption,
	}
}

// SpacingSize enumerates the spacing scale positions.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXs
	SpacingSm
	SpacingMd
	SpacingLg
	SpacingXl
	Spacing2Xl
)

const spacingSizeCount = int(Spacing2Xl) + 1

// SpacingScale maps spacing sizes to character cell counts.
type SpacingScale [spacingSizeCount]int

// DefaultSpacing returns the standard spacing scale.
func DefaultSpacing() SpacingScale {
	return SpacingScale{
		SpacingNone: 0,
		SpacingXs:   1,
		SpacingSm:   1,
		SpacingMd:   2,
		SpacingLg:   3,
		SpacingXl:   4,
		Spacing2Xl:  6,
	}
}

// Value looks up a spacing size, falling back to the medium step for
// out-of-range sizes.
func (s SpacingScale) Value(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(s) {
		index = int(SpacingMd)
	}
	return s[index]
}

// IsZero reports whether every step of the scale is zero.
func (s SpacingScale) IsZero() bool {
	for _, value := range s {
		if value != 0 {
			return false
		}
	}
	return true
}
