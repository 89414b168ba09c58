package xlsfmt

// Custom number formats are assigned identifiers from 164 up; everything
// below is reserved for the built-in table.
const customNumFmtFirst = 164

// builtinNumFmts maps the built-in number format identifiers to their
// format codes. Identifiers 23-36 and 50-163 are reserved, some of them
// locale dependent, and deliberately absent here.
var builtinNumFmts = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  "($#,##0_);($#,##0)",
	6:  "($#,##0_);[Red]($#,##0)",
	7:  "($#,##0.00_);($#,##0.00)",
	8:  "($#,##0.00_);[Red]($#,##0.00)",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "m/d/yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "(#,##0_);(#,##0)",
	38: "(#,##0_);[Red](#,##0)",
	39: "(#,##0.00_);(#,##0.00)",
	40: "(#,##0.00_);[Red](#,##0.00)",
	41: `_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`,
	42: `_($* #,##0_);_($* (#,##0);_($* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`,
	44: `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
}

// BuiltinNumberFormat returns the format code of a built-in number
// format identifier. The second result is false for identifiers without
// a fixed built-in code.
func BuiltinNumberFormat(index int) (string, bool) {
	code, ok := builtinNumFmts[index]
	return code, ok
}

var builtinNumFmtIDs = func() map[string]int {
	ids := make(map[string]int, len(builtinNumFmts))
	for id, code := range builtinNumFmts {
		ids[code] = id
	}
	return ids
}()

// Styles is the deduplicating registry for formats. It interns canonical
// keys into index tables: one table each for font, border and fill
// definitions, one for complete cell formats (xf records) and one for
// differential formats (dxf records), plus the identifier map for custom
// number formats.
//
// Styles is not safe for concurrent use.
type Styles struct {
	xfFormats  []*Format
	xfByKey    map[string]*Format
	dxfFormats []*Format
	dxfByKey   map[string]*Format

	fontIndexes   map[string]int
	borderIndexes map[string]int
	fillIndexes   map[string]int

	customNumFmts      map[string]int
	nextCustomNumFmtID int
}

// NewStyles creates an empty registry.
func NewStyles() *Styles {
	return &Styles{
		xfByKey:            make(map[string]*Format),
		dxfByKey:           make(map[string]*Format),
		fontIndexes:        make(map[string]int),
		borderIndexes:      make(map[string]int),
		fillIndexes:        make(map[string]int),
		customNumFmts:      make(map[string]int),
		nextCustomNumFmtID: customNumFmtFirst,
	}
}

// AddXfFormat interns f as a cell format. Its number format is resolved
// if still pending, its font, border and fill bundles are interned into
// their tables, and the assigned indices are written back onto f. If a
// format with the same canonical key was interned before, the stored
// format is returned and f receives its xf index; otherwise a snapshot
// of f is stored under the next xf index.
func (s *Styles) AddXfFormat(f *Format) *Format {
	s.resolveNumFmt(f)
	s.internFont(f)
	s.internBorder(f)
	s.internFill(f)

	key := string(f.FormatKey())
	if stored, ok := s.xfByKey[key]; ok {
		f.SetXfIndex(stored.XfIndex())
		return stored
	}

	f.SetXfIndex(len(s.xfFormats))
	stored := f.Copy()
	s.xfFormats = append(s.xfFormats, stored)
	s.xfByKey[key] = stored
	return stored
}

// AddDxfFormat interns f as a differential format. Differential records
// embed their font, border and fill definitions instead of referencing
// the shared tables, so only the number format is resolved and only the
// whole-value key is interned.
func (s *Styles) AddDxfFormat(f *Format) *Format {
	f.SetDXF(true)
	s.resolveNumFmt(f)

	key := string(f.FormatKey())
	if stored, ok := s.dxfByKey[key]; ok {
		f.SetDxfIndex(stored.DxfIndex())
		return stored
	}

	f.SetDxfIndex(len(s.dxfFormats))
	stored := f.Copy()
	s.dxfFormats = append(s.dxfFormats, stored)
	s.dxfByKey[key] = stored
	return stored
}

// resolveNumFmt resolves a pending custom format code to an identifier,
// reusing the built-in identifier when the code matches the built-in
// table and assigning the next custom identifier otherwise.
func (s *Styles) resolveNumFmt(f *Format) {
	if f.NumberFormatResolved() {
		return
	}
	code := f.NumberFormat()
	id, ok := builtinNumFmtIDs[code]
	if !ok {
		id, ok = s.customNumFmts[code]
		if !ok {
			id = s.nextCustomNumFmtID
			s.nextCustomNumFmtID++
			s.customNumFmts[code] = id
		}
	}
	f.ResolveNumberFormat(id, code)
}

func (s *Styles) internFont(f *Format) {
	if f.FontIndexValid() {
		return
	}
	key := string(f.FontKey())
	index, ok := s.fontIndexes[key]
	if !ok {
		index = len(s.fontIndexes)
		s.fontIndexes[key] = index
	}
	f.SetFontIndex(index)
}

func (s *Styles) internBorder(f *Format) {
	if f.BorderIndexValid() {
		return
	}
	key := string(f.BorderKey())
	index, ok := s.borderIndexes[key]
	if !ok {
		index = len(s.borderIndexes)
		s.borderIndexes[key] = index
	}
	f.SetBorderIndex(index)
}

func (s *Styles) internFill(f *Format) {
	if f.FillIndexValid() {
		return
	}
	key := string(f.FillKey())
	index, ok := s.fillIndexes[key]
	if !ok {
		index = len(s.fillIndexes)
		s.fillIndexes[key] = index
	}
	f.SetFillIndex(index)
}

// XfFormats returns the interned cell formats in xf-index order.
func (s *Styles) XfFormats() []*Format {
	return s.xfFormats
}

// DxfFormats returns the interned differential formats in dxf-index
// order.
func (s *Styles) DxfFormats() []*Format {
	return s.dxfFormats
}

// FontCount returns the number of distinct font definitions interned.
func (s *Styles) FontCount() int {
	return len(s.fontIndexes)
}

// BorderCount returns the number of distinct border definitions
// interned.
func (s *Styles) BorderCount() int {
	return len(s.borderIndexes)
}

// FillCount returns the number of distinct fill definitions interned.
func (s *Styles) FillCount() int {
	return len(s.fillIndexes)
}

// CustomNumFmtCount returns the number of custom number formats
// assigned.
func (s *Styles) CustomNumFmtCount() int {
	return len(s.customNumFmts)
}
