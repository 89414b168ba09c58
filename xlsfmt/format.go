// Package xlsfmt implements the cell-format value type used when reading
// and writing spreadsheet style tables.
//
// A Format bundles the formatting attributes of a cell: number format,
// font, border, fill, alignment and protection. Spreadsheet files store
// each distinct format once in a shared style table and reference it by
// index from every cell, so Format is built around deduplication: each
// value exposes a deterministic canonical key for itself and for its
// font, border and fill bundles, and a Styles registry interns those
// keys into index tables. Keys are computed lazily and cached; any
// mutation marks the affected bundle dirty and invalidates previously
// assigned indices.
//
// Format is a copy-on-write handle. Copy shares the underlying state in
// O(1); the first mutation through a sharing handle forks a private copy
// so sibling handles are unaffected. Equality is defined by canonical
// key content, never by handle identity.
package xlsfmt

import (
	"bytes"
	"regexp"
)

// Format represents the formatting attributes of a cell.
//
// Create one with New, share it with Copy, and compare with Equal. The
// zero Format is not usable; all methods require a handle obtained from
// New or Copy.
type Format struct {
	d *formatData
}

// New creates a format with all attributes at their defaults.
func New() *Format {
	return &Format{d: newFormatData()}
}

// Copy returns a new handle sharing this format's state. The copy is
// O(1); the state is forked only when one of the handles is later
// mutated, leaving the others on the old snapshot.
func (f *Format) Copy() *Format {
	f.d.refs++
	return &Format{d: f.d}
}

// writable returns the aggregate state for mutation, forking a private
// copy first when the state is shared with other handles. Reads must not
// go through here: lazy key recomputation writes only derived caches and
// is applied to the shared snapshot directly.
func (f *Format) writable() *formatData {
	if f.d.refs > 1 {
		f.d.refs--
		f.d = f.d.clone()
	}
	return f.d
}

// NumberFormatIndex returns the number format identifier.
func (f *Format) NumberFormatIndex() int {
	return f.d.numFmt.index
}

// SetNumberFormatIndex sets the number format identifier. The index must
// be a valid built-in identifier or one previously assigned to a custom
// format.
func (f *Format) SetNumberFormatIndex(index int) {
	d := f.writable()
	d.numFmt.index = index
	d.numFmt.resolved = true
	d.dirty = true
}

// NumberFormat returns the number format code. For built-in formats set
// by index this may be empty.
func (f *Format) NumberFormat() string {
	return f.d.numFmt.code
}

// SetNumberFormat sets a custom number format code. The code has to be
// resolved to an index by the style registry before the format can be
// written out. Setting an empty code is a no-op.
func (f *Format) SetNumberFormat(code string) {
	if code == "" {
		return
	}
	d := f.writable()
	d.numFmt.code = code
	d.numFmt.resolved = false
	d.dirty = true
}

// NumberFormatResolved reports whether the number format index is
// authoritative. False means a custom code is pending resolution by the
// registry.
func (f *Format) NumberFormatResolved() bool {
	return f.d.numFmt.resolved
}

// ResolveNumberFormat records the index the registry resolved the
// current format code to, keeping the code for key stability.
func (f *Format) ResolveNumberFormat(index int, code string) {
	d := f.writable()
	d.numFmt.index = index
	d.numFmt.code = code
	d.numFmt.resolved = true
	d.dirty = true
}

var (
	colorDirectiveRe = regexp.MustCompile(`\[(Green|White|Blue|Magenta|Yellow|Cyan|Red)\]`)
	dateTimeCharRe   = regexp.MustCompile(`[dmhys]`)
)

// IsDateTimeFormat reports whether the number format probably renders a
// date or time. Resolved built-in indices are checked against the
// built-in date/time ranges; otherwise the format code is inspected for
// date/time characters after stripping colour directives. This is a
// heuristic, not a format-language parser.
func (f *Format) IsDateTimeFormat() bool {
	d := f.d
	if d.numFmt.resolved && d.numFmt.code == "" {
		idx := d.numFmt.index
		return (idx >= 15 && idx <= 22) || (idx >= 45 && idx <= 47)
	}
	code := colorDirectiveRe.ReplaceAllString(d.numFmt.code, "")
	return dateTimeCharRe.MatchString(code)
}

// FontSize returns the font size in points.
func (f *Format) FontSize() int {
	return f.d.font.size
}

// SetFontSize sets the font size in points.
func (f *Format) SetFontSize(size int) {
	d := f.writable()
	d.font.size = size
	d.font.dirty = true
}

// FontBold reports whether the font is bold.
func (f *Format) FontBold() bool {
	return f.d.font.bold
}

// SetFontBold turns bold on or off.
func (f *Format) SetFontBold(bold bool) {
	d := f.writable()
	d.font.bold = bold
	d.font.dirty = true
}

// FontItalic reports whether the font is italic.
func (f *Format) FontItalic() bool {
	return f.d.font.italic
}

// SetFontItalic turns italics on or off.
func (f *Format) SetFontItalic(italic bool) {
	d := f.writable()
	d.font.italic = italic
	d.font.dirty = true
}

// FontStrikeOut reports whether the font is struck out.
func (f *Format) FontStrikeOut() bool {
	return f.d.font.strikeOut
}

// SetFontStrikeOut turns strike-out on or off.
func (f *Format) SetFontStrikeOut(strikeOut bool) {
	d := f.writable()
	d.font.strikeOut = strikeOut
	d.font.dirty = true
}

// FontOutline reports whether the font is outlined.
func (f *Format) FontOutline() bool {
	return f.d.font.outline
}

// SetFontOutline turns the outline font on or off.
func (f *Format) SetFontOutline(outline bool) {
	d := f.writable()
	d.font.outline = outline
	d.font.dirty = true
}

// FontShadow reports whether the font has a shadow.
func (f *Format) FontShadow() bool {
	return f.d.font.shadow
}

// SetFontShadow turns the font shadow on or off.
func (f *Format) SetFontShadow(shadow bool) {
	d := f.writable()
	d.font.shadow = shadow
	d.font.dirty = true
}

// FontUnderline returns the underline style of the font.
func (f *Format) FontUnderline() FontUnderline {
	return f.d.font.underline
}

// SetFontUnderline sets the underline style of the font.
func (f *Format) SetFontUnderline(underline FontUnderline) {
	d := f.writable()
	d.font.underline = underline
	d.font.dirty = true
}

// FontScript returns the script style of the font.
func (f *Format) FontScript() FontScript {
	return f.d.font.script
}

// SetFontScript sets the script style of the font.
func (f *Format) SetFontScript(script FontScript) {
	d := f.writable()
	d.font.script = script
	d.font.dirty = true
}

// FontColor returns the colour of the font. When only a theme colour
// reference is set the concrete colour is unknown to this package and
// the invalid zero Color is returned; resolving theme references is up
// to the caller.
func (f *Format) FontColor() Color {
	if !f.d.font.color.Valid() && f.d.font.themeColor != "" {
		return Color{}
	}
	return f.d.font.color
}

// SetFontColor sets the colour of the font.
func (f *Format) SetFontColor(color Color) {
	d := f.writable()
	d.font.color = color
	d.font.dirty = true
}

// FontThemeColor returns the theme colour reference of the font, if any.
func (f *Format) FontThemeColor() string {
	return f.d.font.themeColor
}

// SetFontThemeColor sets the theme colour reference of the font.
func (f *Format) SetFontThemeColor(themeColor string) {
	d := f.writable()
	d.font.themeColor = themeColor
	d.font.dirty = true
}

// FontName returns the name of the font.
func (f *Format) FontName() string {
	return f.d.font.name
}

// SetFontName sets the name of the font.
func (f *Format) SetFontName(name string) {
	d := f.writable()
	d.font.name = name
	d.font.dirty = true
}

// FontFamily returns the font family identifier.
func (f *Format) FontFamily() int {
	return f.d.font.family
}

// SetFontFamily sets the font family identifier.
func (f *Format) SetFontFamily(family int) {
	d := f.writable()
	d.font.family = family
	d.font.dirty = true
}

// FontScheme returns the font scheme name.
func (f *Format) FontScheme() string {
	return f.d.font.scheme
}

// SetFontScheme sets the font scheme name.
func (f *Format) SetFontScheme(scheme string) {
	d := f.writable()
	d.font.scheme = scheme
	d.font.dirty = true
}

// FontIndex returns the cached font-table index.
func (f *Format) FontIndex() int {
	return f.d.font.index
}

// SetFontIndex caches the font-table index assigned by the registry.
func (f *Format) SetFontIndex(index int) {
	f.d.font.setIndex(index)
}

// FontIndexValid reports whether the cached font-table index can still
// be trusted, i.e. no font attribute changed since it was assigned.
func (f *Format) FontIndexValid() bool {
	return f.d.font.validIndex()
}

// FontKey returns the canonical key of the font bundle alone, used by
// the registry to deduplicate font definitions.
func (f *Format) FontKey() []byte {
	if f.d.font.dirty {
		f.d.dirty = true // the whole-value key must be re-generated too
	}
	return f.d.font.key()
}

// SetBorderStyle sets the same style on the left, right, top and bottom
// borders.
func (f *Format) SetBorderStyle(style BorderStyle) {
	f.SetLeftBorderStyle(style)
	f.SetRightBorderStyle(style)
	f.SetTopBorderStyle(style)
	f.SetBottomBorderStyle(style)
}

// SetBorderColor sets the same colour on the left, right, top and bottom
// borders.
func (f *Format) SetBorderColor(color Color) {
	f.SetLeftBorderColor(color)
	f.SetRightBorderColor(color)
	f.SetTopBorderColor(color)
	f.SetBottomBorderColor(color)
}

// LeftBorderStyle returns the left border style.
func (f *Format) LeftBorderStyle() BorderStyle {
	return f.d.border.left
}

// SetLeftBorderStyle sets the left border style.
func (f *Format) SetLeftBorderStyle(style BorderStyle) {
	d := f.writable()
	d.border.left = style
	d.border.dirty = true
}

// LeftBorderColor returns the left border colour, or the invalid zero
// Color when only a theme reference is set.
func (f *Format) LeftBorderColor() Color {
	return themedColor(f.d.border.leftColor, f.d.border.leftThemeColor)
}

// SetLeftBorderColor sets the left border colour.
func (f *Format) SetLeftBorderColor(color Color) {
	d := f.writable()
	d.border.leftColor = color
	d.border.dirty = true
}

// RightBorderStyle returns the right border style.
func (f *Format) RightBorderStyle() BorderStyle {
	return f.d.border.right
}

// SetRightBorderStyle sets the right border style.
func (f *Format) SetRightBorderStyle(style BorderStyle) {
	d := f.writable()
	d.border.right = style
	d.border.dirty = true
}

// RightBorderColor returns the right border colour, or the invalid zero
// Color when only a theme reference is set.
func (f *Format) RightBorderColor() Color {
	return themedColor(f.d.border.rightColor, f.d.border.rightThemeColor)
}

// SetRightBorderColor sets the right border colour.
func (f *Format) SetRightBorderColor(color Color) {
	d := f.writable()
	d.border.rightColor = color
	d.border.dirty = true
}

// TopBorderStyle returns the top border style.
func (f *Format) TopBorderStyle() BorderStyle {
	return f.d.border.top
}

// SetTopBorderStyle sets the top border style.
func (f *Format) SetTopBorderStyle(style BorderStyle) {
	d := f.writable()
	d.border.top = style
	d.border.dirty = true
}

// TopBorderColor returns the top border colour, or the invalid zero
// Color when only a theme reference is set.
func (f *Format) TopBorderColor() Color {
	return themedColor(f.d.border.topColor, f.d.border.topThemeColor)
}

// SetTopBorderColor sets the top border colour.
func (f *Format) SetTopBorderColor(color Color) {
	d := f.writable()
	d.border.topColor = color
	d.border.dirty = true
}

// BottomBorderStyle returns the bottom border style.
func (f *Format) BottomBorderStyle() BorderStyle {
	return f.d.border.bottom
}

// SetBottomBorderStyle sets the bottom border style.
func (f *Format) SetBottomBorderStyle(style BorderStyle) {
	d := f.writable()
	d.border.bottom = style
	d.border.dirty = true
}

// BottomBorderColor returns the bottom border colour, or the invalid
// zero Color when only a theme reference is set.
func (f *Format) BottomBorderColor() Color {
	return themedColor(f.d.border.bottomColor, f.d.border.bottomThemeColor)
}

// SetBottomBorderColor sets the bottom border colour.
func (f *Format) SetBottomBorderColor(color Color) {
	d := f.writable()
	d.border.bottomColor = color
	d.border.dirty = true
}

// DiagonalBorderStyle returns the diagonal border style.
func (f *Format) DiagonalBorderStyle() BorderStyle {
	return f.d.border.diagonal
}

// SetDiagonalBorderStyle sets the diagonal border style.
func (f *Format) SetDiagonalBorderStyle(style BorderStyle) {
	d := f.writable()
	d.border.diagonal = style
	d.border.dirty = true
}

// DiagonalBorderKind returns which diagonal borders are drawn.
func (f *Format) DiagonalBorderKind() DiagonalBorderKind {
	return f.d.border.diagonalKind
}

// SetDiagonalBorderKind sets which diagonal borders are drawn.
func (f *Format) SetDiagonalBorderKind(kind DiagonalBorderKind) {
	d := f.writable()
	d.border.diagonalKind = kind
	d.border.dirty = true
}

// DiagonalBorderColor returns the diagonal border colour, or the invalid
// zero Color when only a theme reference is set.
func (f *Format) DiagonalBorderColor() Color {
	return themedColor(f.d.border.diagonalColor, f.d.border.diagonalThemeColor)
}

// SetDiagonalBorderColor sets the diagonal border colour.
func (f *Format) SetDiagonalBorderColor(color Color) {
	d := f.writable()
	d.border.diagonalColor = color
	d.border.dirty = true
}

// LeftBorderThemeColor returns the theme colour reference of the left
// border, if any.
func (f *Format) LeftBorderThemeColor() string {
	return f.d.border.leftThemeColor
}

// SetLeftBorderThemeColor sets the theme colour reference of the left
// border.
func (f *Format) SetLeftBorderThemeColor(themeColor string) {
	d := f.writable()
	d.border.leftThemeColor = themeColor
	d.border.dirty = true
}

// RightBorderThemeColor returns the theme colour reference of the right
// border, if any.
func (f *Format) RightBorderThemeColor() string {
	return f.d.border.rightThemeColor
}

// SetRightBorderThemeColor sets the theme colour reference of the right
// border.
func (f *Format) SetRightBorderThemeColor(themeColor string) {
	d := f.writable()
	d.border.rightThemeColor = themeColor
	d.border.dirty = true
}

// TopBorderThemeColor returns the theme colour reference of the top
// border, if any.
func (f *Format) TopBorderThemeColor() string {
	return f.d.border.topThemeColor
}

// SetTopBorderThemeColor sets the theme colour reference of the top
// border.
func (f *Format) SetTopBorderThemeColor(themeColor string) {
	d := f.writable()
	d.border.topThemeColor = themeColor
	d.border.dirty = true
}

// BottomBorderThemeColor returns the theme colour reference of the
// bottom border, if any.
func (f *Format) BottomBorderThemeColor() string {
	return f.d.border.bottomThemeColor
}

// SetBottomBorderThemeColor sets the theme colour reference of the
// bottom border.
func (f *Format) SetBottomBorderThemeColor(themeColor string) {
	d := f.writable()
	d.border.bottomThemeColor = themeColor
	d.border.dirty = true
}

// DiagonalBorderThemeColor returns the theme colour reference of the
// diagonal border, if any.
func (f *Format) DiagonalBorderThemeColor() string {
	return f.d.border.diagonalThemeColor
}

// SetDiagonalBorderThemeColor sets the theme colour reference of the
// diagonal border.
func (f *Format) SetDiagonalBorderThemeColor(themeColor string) {
	d := f.writable()
	d.border.diagonalThemeColor = themeColor
	d.border.dirty = true
}

// themedColor implements the deferred theme-resolution boundary: a
// concrete colour wins, a bare theme reference yields no colour.
func themedColor(color Color, themeColor string) Color {
	if !color.Valid() && themeColor != "" {
		return Color{}
	}
	return color
}

// BorderIndex returns the cached border-table index.
func (f *Format) BorderIndex() int {
	return f.d.border.index
}

// SetBorderIndex caches the border-table index assigned by the registry.
func (f *Format) SetBorderIndex(index int) {
	f.d.border.setIndex(index)
}

// BorderIndexValid reports whether the cached border-table index can
// still be trusted.
func (f *Format) BorderIndexValid() bool {
	return f.d.border.validIndex()
}

// BorderKey returns the canonical key of the border bundle alone.
func (f *Format) BorderKey() []byte {
	if f.d.border.dirty {
		f.d.dirty = true // the whole-value key must be re-generated too
	}
	return f.d.border.key()
}

// FillPattern returns the fill pattern.
func (f *Format) FillPattern() FillPattern {
	return f.d.fill.pattern
}

// SetFillPattern sets the fill pattern.
func (f *Format) SetFillPattern(pattern FillPattern) {
	d := f.writable()
	d.fill.pattern = pattern
	d.fill.dirty = true
}

// PatternForegroundColor returns the pattern foreground colour, or the
// invalid zero Color when only a theme reference is set.
func (f *Format) PatternForegroundColor() Color {
	return themedColor(f.d.fill.fgColor, f.d.fill.fgThemeColor)
}

// SetPatternForegroundColor sets the pattern foreground colour. Setting
// a valid colour while the pattern is none switches the pattern to
// solid.
func (f *Format) SetPatternForegroundColor(color Color) {
	d := f.writable()
	if color.Valid() && d.fill.pattern == PatternNone {
		d.fill.pattern = PatternSolid
	}
	d.fill.fgColor = color
	d.fill.dirty = true
}

// PatternBackgroundColor returns the pattern background colour, or the
// invalid zero Color when only a theme reference is set.
func (f *Format) PatternBackgroundColor() Color {
	return themedColor(f.d.fill.bgColor, f.d.fill.bgThemeColor)
}

// SetPatternBackgroundColor sets the pattern background colour. Setting
// a valid colour while the pattern is none switches the pattern to
// solid.
func (f *Format) SetPatternBackgroundColor(color Color) {
	d := f.writable()
	if color.Valid() && d.fill.pattern == PatternNone {
		d.fill.pattern = PatternSolid
	}
	d.fill.bgColor = color
	d.fill.dirty = true
}

// PatternForegroundThemeColor returns the theme colour reference of the
// pattern foreground, if any.
func (f *Format) PatternForegroundThemeColor() string {
	return f.d.fill.fgThemeColor
}

// SetPatternForegroundThemeColor sets the theme colour reference of the
// pattern foreground.
func (f *Format) SetPatternForegroundThemeColor(themeColor string) {
	d := f.writable()
	d.fill.fgThemeColor = themeColor
	d.fill.dirty = true
}

// PatternBackgroundThemeColor returns the theme colour reference of the
// pattern background, if any.
func (f *Format) PatternBackgroundThemeColor() string {
	return f.d.fill.bgThemeColor
}

// SetPatternBackgroundThemeColor sets the theme colour reference of the
// pattern background.
func (f *Format) SetPatternBackgroundThemeColor(themeColor string) {
	d := f.writable()
	d.fill.bgThemeColor = themeColor
	d.fill.dirty = true
}

// FillIndex returns the cached fill-table index.
func (f *Format) FillIndex() int {
	return f.d.fill.index
}

// SetFillIndex caches the fill-table index assigned by the registry.
func (f *Format) SetFillIndex(index int) {
	f.d.fill.setIndex(index)
}

// FillIndexValid reports whether the cached fill-table index can still
// be trusted.
func (f *Format) FillIndexValid() bool {
	return f.d.fill.validIndex()
}

// FillKey returns the canonical key of the fill bundle alone.
func (f *Format) FillKey() []byte {
	if f.d.fill.dirty {
		f.d.dirty = true // the whole-value key must be re-generated too
	}
	return f.d.fill.key()
}

// HorizontalAlignment returns the horizontal alignment.
func (f *Format) HorizontalAlignment() HorizontalAlignment {
	return f.d.alignment.alignH
}

// SetHorizontalAlignment sets the horizontal alignment.
//
// Indentation only applies to the general, left, right and distributed
// alignments; setting any other alignment resets the indent to zero.
// The fill, justify and distributed alignments are incompatible with
// shrink-to-fit and clear it.
func (f *Format) SetHorizontalAlignment(align HorizontalAlignment) {
	d := f.writable()
	if d.alignment.indent != 0 &&
		align != AlignHGeneral && align != AlignLeft &&
		align != AlignRight && align != AlignHDistributed {
		d.alignment.indent = 0
	}
	if d.alignment.shrinkToFit &&
		(align == AlignHFill || align == AlignHJustify || align == AlignHDistributed) {
		d.alignment.shrinkToFit = false
	}
	d.alignment.alignH = align
	d.dirty = true
}

// VerticalAlignment returns the vertical alignment.
func (f *Format) VerticalAlignment() VerticalAlignment {
	return f.d.alignment.alignV
}

// SetVerticalAlignment sets the vertical alignment.
func (f *Format) SetVerticalAlignment(align VerticalAlignment) {
	d := f.writable()
	d.alignment.alignV = align
	d.dirty = true
}

// TextWrap reports whether cell text is wrapped.
func (f *Format) TextWrap() bool {
	return f.d.alignment.wrap
}

// SetTextWrap turns text wrapping on or off. Wrapping is incompatible
// with shrink-to-fit and clears it.
func (f *Format) SetTextWrap(wrap bool) {
	d := f.writable()
	if wrap && d.alignment.shrinkToFit {
		d.alignment.shrinkToFit = false
	}
	d.alignment.wrap = wrap
	d.dirty = true
}

// Rotation returns the text rotation.
func (f *Format) Rotation() int {
	return f.d.alignment.rotation
}

// SetRotation sets the text rotation in degrees. Valid values are 0
// through 180, or 255 for vertical text. The value is stored as given;
// out-of-range values are the caller's responsibility.
func (f *Format) SetRotation(rotation int) {
	d := f.writable()
	d.alignment.rotation = rotation
	d.dirty = true
}

// Indent returns the text indentation level.
func (f *Format) Indent() int {
	return f.d.alignment.indent
}

// SetIndent sets the text indentation level, at most 15. A non-zero
// indent forces the horizontal alignment to left unless the current
// alignment is one of general, left, right or justify.
func (f *Format) SetIndent(indent int) {
	d := f.writable()
	if indent != 0 &&
		d.alignment.alignH != AlignHGeneral && d.alignment.alignH != AlignLeft &&
		d.alignment.alignH != AlignRight && d.alignment.alignH != AlignHJustify {
		d.alignment.alignH = AlignLeft
	}
	d.alignment.indent = indent
	d.dirty = true
}

// ShrinkToFit reports whether cell text is shrunk to fit the cell.
func (f *Format) ShrinkToFit() bool {
	return f.d.alignment.shrinkToFit
}

// SetShrinkToFit turns shrink-to-fit on or off. Shrink-to-fit is
// incompatible with text wrapping and with the fill, justify and
// distributed horizontal alignments: enabling it clears wrapping and
// demotes those alignments to left.
func (f *Format) SetShrinkToFit(shrink bool) {
	d := f.writable()
	if shrink && d.alignment.wrap {
		d.alignment.wrap = false
	}
	if shrink && (d.alignment.alignH == AlignHFill ||
		d.alignment.alignH == AlignHJustify || d.alignment.alignH == AlignHDistributed) {
		d.alignment.alignH = AlignLeft
	}
	d.alignment.shrinkToFit = shrink
	d.dirty = true
}

// AlignmentChanged reports whether any alignment attribute differs from
// its default. This is a presentation query only; alignment fields are
// always part of the canonical key, defaults or not.
func (f *Format) AlignmentChanged() bool {
	a := f.d.alignment
	return a.alignH != AlignHGeneral ||
		a.alignV != AlignBottom ||
		a.indent != 0 ||
		a.rotation != 0 ||
		a.wrap ||
		a.shrinkToFit
}

// HorizontalAlignmentString returns the style-definition name of the
// horizontal alignment, or "" for the general alignment.
func (f *Format) HorizontalAlignmentString() string {
	return f.d.alignment.alignH.String()
}

// VerticalAlignmentString returns the style-definition name of the
// vertical alignment, or "" for the default bottom alignment.
func (f *Format) VerticalAlignmentString() string {
	return f.d.alignment.alignV.String()
}

// Hidden reports whether the cell formula is hidden when the sheet is
// protected.
func (f *Format) Hidden() bool {
	return f.d.protection.hidden
}

// SetHidden turns formula hiding on or off.
func (f *Format) SetHidden(hidden bool) {
	d := f.writable()
	d.protection.hidden = hidden
	d.dirty = true
}

// Locked reports whether the cell is locked when the sheet is protected.
func (f *Format) Locked() bool {
	return f.d.protection.locked
}

// SetLocked turns cell locking on or off.
func (f *Format) SetLocked(locked bool) {
	d := f.writable()
	d.protection.locked = locked
	d.dirty = true
}

// FormatKey returns the canonical key of the whole format: a
// deterministic serialisation of the font, border and fill sub-keys
// followed by the number format index and the alignment and protection
// fields. Two formats are equal exactly when their keys are
// byte-identical.
//
// The key is recomputed when the value or any of its index-bearing
// bundles changed since the last computation; recomputation drops the
// cached xf and dxf indices.
func (f *Format) FormatKey() []byte {
	d := f.d
	if d.anyDirty() {
		var w keyWriter
		w.putBytes(d.font.key())
		w.putBytes(d.border.key())
		w.putBytes(d.fill.key())
		w.putInt(d.numFmt.index)
		w.putInt(int(d.alignment.alignH))
		w.putInt(int(d.alignment.alignV))
		w.putInt(d.alignment.indent)
		w.putInt(d.alignment.rotation)
		w.putBool(d.alignment.shrinkToFit)
		w.putBool(d.alignment.wrap)
		w.putBool(d.protection.hidden)
		w.putBool(d.protection.locked)
		d.formatKey = w.bytes()
		d.dirty = false
		d.xfIndexValid = false
		d.dxfIndexValid = false
	}
	return d.formatKey
}

// Equal reports whether two formats have identical canonical keys.
func (f *Format) Equal(other *Format) bool {
	return bytes.Equal(f.FormatKey(), other.FormatKey())
}

// XfIndex returns the cached cell-format (xf) table index.
func (f *Format) XfIndex() int {
	return f.d.xfIndex
}

// SetXfIndex caches the xf-table index assigned by the registry.
func (f *Format) SetXfIndex(index int) {
	f.d.xfIndex = index
	f.d.xfIndexValid = true
}

// XfIndexValid reports whether the cached xf-table index can still be
// trusted. Any mutation since the index was assigned makes it false
// until the registry writes a new index back.
func (f *Format) XfIndexValid() bool {
	return !f.d.anyDirty() && f.d.xfIndexValid
}

// DxfIndex returns the cached differential-format (dxf) table index.
func (f *Format) DxfIndex() int {
	return f.d.dxfIndex
}

// SetDxfIndex caches the dxf-table index assigned by the registry.
func (f *Format) SetDxfIndex(index int) {
	f.d.dxfIndex = index
	f.d.dxfIndexValid = true
}

// DxfIndexValid reports whether the cached dxf-table index can still be
// trusted.
func (f *Format) DxfIndexValid() bool {
	return !f.d.anyDirty() && f.d.dxfIndexValid
}

// IsDXF reports whether this format is a differential format, the kind
// of record conditional formatting uses to express only the changes
// applied under a condition.
func (f *Format) IsDXF() bool {
	return f.d.isDXF
}

// SetDXF marks the format as a differential format.
func (f *Format) SetDXF(dxf bool) {
	d := f.writable()
	d.isDXF = dxf
}

// Theme returns the theme identifier.
func (f *Format) Theme() int {
	return f.d.theme
}

// SetTheme sets the theme identifier.
func (f *Format) SetTheme(theme int) {
	d := f.writable()
	d.theme = theme
}
