package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mwing/xlsfmt/xlsfmt"
)

// styleSheet is the TOML schema styletab reads: a list of named style
// definitions, each with optional attribute tables.
type styleSheet struct {
	Styles []styleDef `toml:"style"`
}

type styleDef struct {
	Name       string         `toml:"name"`
	Number     *numberDef     `toml:"number"`
	Font       *fontDef       `toml:"font"`
	Border     *borderDef     `toml:"border"`
	Fill       *fillDef       `toml:"fill"`
	Alignment  *alignmentDef  `toml:"alignment"`
	Protection *protectionDef `toml:"protection"`
}

type numberDef struct {
	Format string `toml:"format"`
	Index  *int   `toml:"index"`
}

type fontDef struct {
	Name       string `toml:"name"`
	Size       *int   `toml:"size"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
	StrikeOut  bool   `toml:"strikeout"`
	Underline  string `toml:"underline"`
	Color      string `toml:"color"`
	ThemeColor string `toml:"theme_color"`
}

type borderDef struct {
	Style        string `toml:"style"` // shorthand for all four edges
	Color        string `toml:"color"`
	Left         string `toml:"left"`
	Right        string `toml:"right"`
	Top          string `toml:"top"`
	Bottom       string `toml:"bottom"`
	Diagonal     string `toml:"diagonal"`
	DiagonalKind string `toml:"diagonal_kind"`
}

type fillDef struct {
	Pattern    string `toml:"pattern"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

type alignmentDef struct {
	Horizontal  string `toml:"horizontal"`
	Vertical    string `toml:"vertical"`
	Indent      int    `toml:"indent"`
	Rotation    int    `toml:"rotation"`
	Wrap        bool   `toml:"wrap"`
	ShrinkToFit bool   `toml:"shrink_to_fit"`
}

type protectionDef struct {
	Hidden bool `toml:"hidden"`
	Locked bool `toml:"locked"`
}

func loadStyleSheet(path string) (*styleSheet, error) {
	var sheet styleSheet
	if _, err := toml.DecodeFile(path, &sheet); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, def := range sheet.Styles {
		if def.Name == "" {
			return nil, fmt.Errorf("%s: style %d has no name", path, i+1)
		}
	}
	return &sheet, nil
}

var borderStyles = map[string]xlsfmt.BorderStyle{
	"none":             xlsfmt.BorderNone,
	"thin":             xlsfmt.BorderThin,
	"medium":           xlsfmt.BorderMedium,
	"dashed":           xlsfmt.BorderDashed,
	"dotted":           xlsfmt.BorderDotted,
	"thick":            xlsfmt.BorderThick,
	"double":           xlsfmt.BorderDouble,
	"hair":             xlsfmt.BorderHair,
	"mediumDashed":     xlsfmt.BorderMediumDashed,
	"dashDot":          xlsfmt.BorderDashDot,
	"mediumDashDot":    xlsfmt.BorderMediumDashDot,
	"dashDotDot":       xlsfmt.BorderDashDotDot,
	"mediumDashDotDot": xlsfmt.BorderMediumDashDotDot,
	"slantDashDot":     xlsfmt.BorderSlantDashDot,
}

var fillPatterns = map[string]xlsfmt.FillPattern{
	"none":            xlsfmt.PatternNone,
	"solid":           xlsfmt.PatternSolid,
	"mediumGray":      xlsfmt.PatternMediumGray,
	"darkGray":        xlsfmt.PatternDarkGray,
	"lightGray":       xlsfmt.PatternLightGray,
	"darkHorizontal":  xlsfmt.PatternDarkHorizontal,
	"darkVertical":    xlsfmt.PatternDarkVertical,
	"darkDown":        xlsfmt.PatternDarkDown,
	"darkUp":          xlsfmt.PatternDarkUp,
	"darkGrid":        xlsfmt.PatternDarkGrid,
	"darkTrellis":     xlsfmt.PatternDarkTrellis,
	"lightHorizontal": xlsfmt.PatternLightHorizontal,
	"lightVertical":   xlsfmt.PatternLightVertical,
	"lightDown":       xlsfmt.PatternLightDown,
	"lightUp":         xlsfmt.PatternLightUp,
	"lightTrellis":    xlsfmt.PatternLightTrellis,
	"lightGrid":       xlsfmt.PatternLightGrid,
	"gray125":         xlsfmt.PatternGray125,
	"gray0625":        xlsfmt.PatternGray0625,
}

var horizontalAlignments = map[string]xlsfmt.HorizontalAlignment{
	"general":          xlsfmt.AlignHGeneral,
	"left":             xlsfmt.AlignLeft,
	"center":           xlsfmt.AlignHCenter,
	"right":            xlsfmt.AlignRight,
	"fill":             xlsfmt.AlignHFill,
	"justify":          xlsfmt.AlignHJustify,
	"centerContinuous": xlsfmt.AlignHMerge,
	"distributed":      xlsfmt.AlignHDistributed,
}

var verticalAlignments = map[string]xlsfmt.VerticalAlignment{
	"bottom":      xlsfmt.AlignBottom,
	"top":         xlsfmt.AlignTop,
	"center":      xlsfmt.AlignVCenter,
	"justify":     xlsfmt.AlignVJustify,
	"distributed": xlsfmt.AlignVDistributed,
}

var fontUnderlines = map[string]xlsfmt.FontUnderline{
	"none":             xlsfmt.FontUnderlineNone,
	"single":           xlsfmt.FontUnderlineSingle,
	"double":           xlsfmt.FontUnderlineDouble,
	"singleAccounting": xlsfmt.FontUnderlineSingleAccounting,
	"doubleAccounting": xlsfmt.FontUnderlineDoubleAccounting,
}

var diagonalKinds = map[string]xlsfmt.DiagonalBorderKind{
	"none": xlsfmt.DiagonalBorderNone,
	"down": xlsfmt.DiagonalBorderDown,
	"up":   xlsfmt.DiagonalBorderUp,
	"both": xlsfmt.DiagonalBorderBoth,
}

// build turns a style definition into a Format value.
func (sd *styleDef) build() (*xlsfmt.Format, error) {
	f := xlsfmt.New()

	if n := sd.Number; n != nil {
		if n.Index != nil {
			f.SetNumberFormatIndex(*n.Index)
		}
		if n.Format != "" {
			f.SetNumberFormat(n.Format)
		}
	}

	if fd := sd.Font; fd != nil {
		if fd.Name != "" {
			f.SetFontName(fd.Name)
		}
		if fd.Size != nil {
			f.SetFontSize(*fd.Size)
		}
		if fd.Bold {
			f.SetFontBold(true)
		}
		if fd.Italic {
			f.SetFontItalic(true)
		}
		if fd.StrikeOut {
			f.SetFontStrikeOut(true)
		}
		if fd.Underline != "" {
			u, ok := fontUnderlines[fd.Underline]
			if !ok {
				return nil, fmt.Errorf("style %q: unknown underline %q", sd.Name, fd.Underline)
			}
			f.SetFontUnderline(u)
		}
		if fd.Color != "" {
			c, err := parseColor(fd.Color)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", sd.Name, err)
			}
			f.SetFontColor(c)
		}
		if fd.ThemeColor != "" {
			f.SetFontThemeColor(fd.ThemeColor)
		}
	}

	if bd := sd.Border; bd != nil {
		if err := sd.applyBorder(f, bd); err != nil {
			return nil, err
		}
	}

	if fl := sd.Fill; fl != nil {
		if fl.Pattern != "" {
			p, ok := fillPatterns[fl.Pattern]
			if !ok {
				return nil, fmt.Errorf("style %q: unknown fill pattern %q", sd.Name, fl.Pattern)
			}
			f.SetFillPattern(p)
		}
		if fl.Foreground != "" {
			c, err := parseColor(fl.Foreground)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", sd.Name, err)
			}
			f.SetPatternForegroundColor(c)
		}
		if fl.Background != "" {
			c, err := parseColor(fl.Background)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", sd.Name, err)
			}
			f.SetPatternBackgroundColor(c)
		}
	}

	if al := sd.Alignment; al != nil {
		if al.Horizontal != "" {
			h, ok := horizontalAlignments[al.Horizontal]
			if !ok {
				return nil, fmt.Errorf("style %q: unknown horizontal alignment %q", sd.Name, al.Horizontal)
			}
			f.SetHorizontalAlignment(h)
		}
		if al.Vertical != "" {
			v, ok := verticalAlignments[al.Vertical]
			if !ok {
				return nil, fmt.Errorf("style %q: unknown vertical alignment %q", sd.Name, al.Vertical)
			}
			f.SetVerticalAlignment(v)
		}
		if al.Indent != 0 {
			f.SetIndent(al.Indent)
		}
		if al.Rotation != 0 {
			f.SetRotation(al.Rotation)
		}
		if al.Wrap {
			f.SetTextWrap(true)
		}
		if al.ShrinkToFit {
			f.SetShrinkToFit(true)
		}
	}

	if p := sd.Protection; p != nil {
		f.SetHidden(p.Hidden)
		f.SetLocked(p.Locked)
	}

	return f, nil
}

func (sd *styleDef) applyBorder(f *xlsfmt.Format, bd *borderDef) error {
	lookup := func(name string) (xlsfmt.BorderStyle, error) {
		s, ok := borderStyles[name]
		if !ok {
			return 0, fmt.Errorf("style %q: unknown border style %q", sd.Name, name)
		}
		return s, nil
	}

	if bd.Style != "" {
		s, err := lookup(bd.Style)
		if err != nil {
			return err
		}
		f.SetBorderStyle(s)
	}
	if bd.Color != "" {
		c, err := parseColor(bd.Color)
		if err != nil {
			return fmt.Errorf("style %q: %w", sd.Name, err)
		}
		f.SetBorderColor(c)
	}

	edges := []struct {
		name string
		set  func(xlsfmt.BorderStyle)
	}{
		{bd.Left, f.SetLeftBorderStyle},
		{bd.Right, f.SetRightBorderStyle},
		{bd.Top, f.SetTopBorderStyle},
		{bd.Bottom, f.SetBottomBorderStyle},
		{bd.Diagonal, f.SetDiagonalBorderStyle},
	}
	for _, e := range edges {
		if e.name == "" {
			continue
		}
		s, err := lookup(e.name)
		if err != nil {
			return err
		}
		e.set(s)
	}

	if bd.DiagonalKind != "" {
		k, ok := diagonalKinds[bd.DiagonalKind]
		if !ok {
			return fmt.Errorf("style %q: unknown diagonal kind %q", sd.Name, bd.DiagonalKind)
		}
		f.SetDiagonalBorderKind(k)
	}
	return nil
}

// parseColor parses "#RRGGBB" or "#AARRGGBB".
func parseColor(s string) (xlsfmt.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return xlsfmt.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	switch len(hex) {
	case 6:
		return xlsfmt.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case 8:
		return xlsfmt.ARGB(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
	default:
		return xlsfmt.Color{}, fmt.Errorf("invalid colour %q", s)
	}
}
