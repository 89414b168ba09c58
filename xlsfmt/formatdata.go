package xlsfmt

import (
	"bytes"
	"encoding/binary"
)

// keyWriter serialises bundle fields into a canonical byte key. The
// encoding is fixed big-endian with length-prefixed variable parts, so
// the same semantic content always produces the same bytes, across runs
// and across processes.
type keyWriter struct {
	buf bytes.Buffer
}

func (w *keyWriter) putUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *keyWriter) putInt(v int) {
	w.putUint32(uint32(int32(v)))
}

func (w *keyWriter) putBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *keyWriter) putString(s string) {
	w.putUint32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *keyWriter) putBytes(b []byte) {
	w.putUint32(uint32(len(b)))
	w.buf.Write(b)
}

func (w *keyWriter) putColor(c Color) {
	w.putBool(c.valid)
	w.putUint32(c.ARGB())
}

func (w *keyWriter) bytes() []byte {
	return w.buf.Bytes()
}

// numFmtData holds the number-format bundle. resolved means index is
// authoritative; otherwise code still has to be resolved to an index by
// the style registry. Number formats carry no index cache of their own:
// the format index is embedded directly into the whole-value key.
type numFmtData struct {
	index    int
	code     string
	resolved bool
}

// fontData is the font bundle with its own dirty flag, cached sub-key
// and font-table index cache.
type fontData struct {
	size       int
	bold       bool
	italic     bool
	strikeOut  bool
	outline    bool
	shadow     bool
	underline  FontUnderline
	script     FontScript
	color      Color
	themeColor string
	family     int
	name       string
	scheme     string

	dirty      bool
	index      int
	indexValid bool
	cachedKey  []byte
}

func defaultFontData() fontData {
	return fontData{
		size:   11,
		family: 2,
		name:   "Calibri",
		scheme: "minor",
		dirty:  true,
		index:  -1,
	}
}

// key returns the canonical sub-key, recomputing it when the bundle is
// dirty. Recomputation clears the dirty flag and drops any cached
// font-table index.
func (f *fontData) key() []byte {
	if f.dirty {
		var w keyWriter
		w.putInt(f.size)
		w.putBool(f.bold)
		w.putBool(f.italic)
		w.putBool(f.strikeOut)
		w.putBool(f.outline)
		w.putBool(f.shadow)
		w.putInt(int(f.underline))
		w.putInt(int(f.script))
		w.putColor(f.color)
		w.putString(f.themeColor)
		w.putInt(f.family)
		w.putString(f.name)
		w.putString(f.scheme)
		f.cachedKey = w.bytes()
		f.dirty = false
		f.indexValid = false
	}
	return f.cachedKey
}

func (f *fontData) validIndex() bool {
	return !f.dirty && f.indexValid
}

func (f *fontData) setIndex(index int) {
	f.index = index
	f.indexValid = true
}

// borderData is the border bundle: a style and colour per edge, plus the
// diagonal edge with its direction kind.
type borderData struct {
	left, right, top, bottom, diagonal                          BorderStyle
	leftColor, rightColor, topColor, bottomColor, diagonalColor Color

	leftThemeColor, rightThemeColor string
	topThemeColor, bottomThemeColor string
	diagonalThemeColor              string

	diagonalKind DiagonalBorderKind

	dirty      bool
	index      int
	indexValid bool
	cachedKey  []byte
}

func defaultBorderData() borderData {
	return borderData{dirty: true, index: -1}
}

func (b *borderData) key() []byte {
	if b.dirty {
		var w keyWriter
		w.putInt(int(b.left))
		w.putColor(b.leftColor)
		w.putString(b.leftThemeColor)
		w.putInt(int(b.right))
		w.putColor(b.rightColor)
		w.putString(b.rightThemeColor)
		w.putInt(int(b.top))
		w.putColor(b.topColor)
		w.putString(b.topThemeColor)
		w.putInt(int(b.bottom))
		w.putColor(b.bottomColor)
		w.putString(b.bottomThemeColor)
		w.putInt(int(b.diagonal))
		w.putColor(b.diagonalColor)
		w.putString(b.diagonalThemeColor)
		w.putInt(int(b.diagonalKind))
		b.cachedKey = w.bytes()
		b.dirty = false
		b.indexValid = false
	}
	return b.cachedKey
}

func (b *borderData) validIndex() bool {
	return !b.dirty && b.indexValid
}

func (b *borderData) setIndex(index int) {
	b.index = index
	b.indexValid = true
}

// fillData is the fill bundle: a pattern and its two pattern colours.
type fillData struct {
	pattern FillPattern

	fgColor, bgColor           Color
	fgThemeColor, bgThemeColor string

	dirty      bool
	index      int
	indexValid bool
	cachedKey  []byte
}

func defaultFillData() fillData {
	return fillData{dirty: true, index: -1}
}

func (f *fillData) key() []byte {
	if f.dirty {
		var w keyWriter
		w.putInt(int(f.pattern))
		w.putColor(f.fgColor)
		w.putString(f.fgThemeColor)
		w.putColor(f.bgColor)
		w.putString(f.bgThemeColor)
		f.cachedKey = w.bytes()
		f.dirty = false
		f.indexValid = false
	}
	return f.cachedKey
}

func (f *fillData) validIndex() bool {
	return !f.dirty && f.indexValid
}

func (f *fillData) setIndex(index int) {
	f.index = index
	f.indexValid = true
}

// alignmentData has no sub-key or index cache: its fields go directly
// into the whole-value key, defaults included.
type alignmentData struct {
	alignH      HorizontalAlignment
	alignV      VerticalAlignment
	indent      int
	rotation    int
	wrap        bool
	shrinkToFit bool
}

type protectionData struct {
	hidden bool
	locked bool
}

// formatData is the aggregate state behind a Format handle. It is shared
// between handles until one of them mutates; refs counts the handles
// currently referencing it. The counter is not atomic: handles sharing
// one formatData must not be mutated from multiple goroutines without
// external synchronisation.
type formatData struct {
	refs int

	numFmt     numFmtData
	font       fontData
	border     borderData
	fill       fillData
	alignment  alignmentData
	protection protectionData

	dirty     bool
	formatKey []byte

	xfIndex      int
	xfIndexValid bool

	isDXF         bool
	dxfIndex      int
	dxfIndexValid bool

	theme int
}

func newFormatData() *formatData {
	return &formatData{
		refs:     1,
		numFmt:   numFmtData{resolved: true},
		font:     defaultFontData(),
		border:   defaultBorderData(),
		fill:     defaultFillData(),
		dirty:    true,
		xfIndex:  -1,
		dxfIndex: -1,
	}
}

// clone produces a private copy with a fresh reference count. Cached key
// slices are replaced wholesale on recomputation, never written in
// place, so sharing the slice headers with the original is safe.
func (d *formatData) clone() *formatData {
	nd := *d
	nd.refs = 1
	return &nd
}

// anyDirty reports whether the whole value or any index-bearing bundle
// has changed since the last whole-value key computation.
func (d *formatData) anyDirty() bool {
	return d.dirty || d.font.dirty || d.border.dirty || d.fill.dirty
}
