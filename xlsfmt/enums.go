package xlsfmt

// HorizontalAlignment is the horizontal alignment of cell content.
type HorizontalAlignment int

const (
	AlignHGeneral HorizontalAlignment = iota
	AlignLeft
	AlignHCenter
	AlignRight
	AlignHFill
	AlignHJustify
	AlignHMerge
	AlignHDistributed
)

var horizontalAlignmentNames = map[HorizontalAlignment]string{
	AlignLeft:         "left",
	AlignHCenter:      "center",
	AlignRight:        "right",
	AlignHFill:        "fill",
	AlignHJustify:     "justify",
	AlignHMerge:       "centerContinuous",
	AlignHDistributed: "distributed",
}

// String returns the name used for this alignment in style definitions.
// The general alignment has no name and yields the empty string.
func (a HorizontalAlignment) String() string {
	return horizontalAlignmentNames[a]
}

// VerticalAlignment is the vertical alignment of cell content.
// The zero value is the bottom alignment, which is the spreadsheet default.
type VerticalAlignment int

const (
	AlignBottom VerticalAlignment = iota
	AlignTop
	AlignVCenter
	AlignVJustify
	AlignVDistributed
)

var verticalAlignmentNames = map[VerticalAlignment]string{
	AlignTop:          "top",
	AlignVCenter:      "center",
	AlignVJustify:     "justify",
	AlignVDistributed: "distributed",
}

// String returns the name used for this alignment in style definitions.
// The default bottom alignment has no name and yields the empty string.
func (a VerticalAlignment) String() string {
	return verticalAlignmentNames[a]
}

// BorderStyle is the line style of one border edge.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantDashDot
)

// DiagonalBorderKind selects which diagonal borders are drawn.
type DiagonalBorderKind int

const (
	DiagonalBorderNone DiagonalBorderKind = iota
	DiagonalBorderDown
	DiagonalBorderUp
	DiagonalBorderBoth
)

// FillPattern is the pattern of a cell fill.
type FillPattern int

const (
	PatternNone FillPattern = iota
	PatternSolid
	PatternMediumGray
	PatternDarkGray
	PatternLightGray
	PatternDarkHorizontal
	PatternDarkVertical
	PatternDarkDown
	PatternDarkUp
	PatternDarkGrid
	PatternDarkTrellis
	PatternLightHorizontal
	PatternLightVertical
	PatternLightDown
	PatternLightUp
	PatternLightTrellis
	PatternLightGrid
	PatternGray125
	PatternGray0625
)

// FontUnderline is the underline style of a font.
type FontUnderline int

const (
	FontUnderlineNone FontUnderline = iota
	FontUnderlineSingle
	FontUnderlineDouble
	FontUnderlineSingleAccounting
	FontUnderlineDoubleAccounting
)

// FontScript is the script (escapement) style of a font.
type FontScript int

const (
	FontScriptNormal FontScript = iota
	FontScriptSuper
	FontScriptSub
)
