package xlsfmt

import (
	"bytes"
	"testing"
)

func TestDefaults(t *testing.T) {
	f := New()
	if f.FontSize() != 11 {
		t.Errorf("FontSize() = %d, want 11", f.FontSize())
	}
	if f.FontName() != "Calibri" {
		t.Errorf("FontName() = %q, want %q", f.FontName(), "Calibri")
	}
	if f.HorizontalAlignment() != AlignHGeneral {
		t.Errorf("HorizontalAlignment() = %v, want AlignHGeneral", f.HorizontalAlignment())
	}
	if f.VerticalAlignment() != AlignBottom {
		t.Errorf("VerticalAlignment() = %v, want AlignBottom", f.VerticalAlignment())
	}
	if f.FillPattern() != PatternNone {
		t.Errorf("FillPattern() = %v, want PatternNone", f.FillPattern())
	}
	if f.AlignmentChanged() {
		t.Error("AlignmentChanged() = true for a default format")
	}
	if f.XfIndexValid() {
		t.Error("XfIndexValid() = true before any index was assigned")
	}
	if f.FontIndexValid() {
		t.Error("FontIndexValid() = true before any index was assigned")
	}
	if f.IsDXF() {
		t.Error("IsDXF() = true for a default format")
	}
}

func TestKeyDeterminism(t *testing.T) {
	// Identical attribute assignments made in different orders must
	// produce byte-identical keys.
	a := New()
	a.SetFontBold(true)
	a.SetFontSize(14)
	a.SetFillPattern(PatternSolid)
	a.SetPatternForegroundColor(RGB(0xdd, 0xeb, 0xf7))
	a.SetBorderStyle(BorderThin)
	a.SetHorizontalAlignment(AlignHCenter)
	a.SetNumberFormatIndex(10)
	a.SetLocked(true)

	b := New()
	b.SetLocked(true)
	b.SetNumberFormatIndex(10)
	b.SetHorizontalAlignment(AlignHCenter)
	b.SetBorderStyle(BorderThin)
	b.SetPatternForegroundColor(RGB(0xdd, 0xeb, 0xf7))
	b.SetFillPattern(PatternSolid)
	b.SetFontSize(14)
	b.SetFontBold(true)

	if !bytes.Equal(a.FormatKey(), b.FormatKey()) {
		t.Error("formats built in different orders have different keys")
	}
	if !a.Equal(b) {
		t.Error("Equal() = false for identical formats")
	}
}

func TestKeyStableAcrossReads(t *testing.T) {
	f := New()
	f.SetFontItalic(true)
	key := f.FormatKey()
	for i := 0; i < 3; i++ {
		if !bytes.Equal(f.FormatKey(), key) {
			t.Fatalf("FormatKey() changed on read %d without a mutation", i)
		}
	}
}

func TestCopyOnWriteIsolation(t *testing.T) {
	a := New()
	a.SetFontSize(12)
	a.SetFontName("Arial")
	keyBefore := append([]byte(nil), a.FormatKey()...)

	b := a.Copy()
	b.SetFontSize(20)

	if a.FontSize() != 12 {
		t.Errorf("a.FontSize() = %d after mutating the copy, want 12", a.FontSize())
	}
	if b.FontSize() != 20 {
		t.Errorf("b.FontSize() = %d, want 20", b.FontSize())
	}
	if !bytes.Equal(a.FormatKey(), keyBefore) {
		t.Error("a's key changed after mutating the copy")
	}
	if bytes.Equal(a.FormatKey(), b.FormatKey()) {
		t.Error("a and b have equal keys after diverging")
	}
}

func TestCopyIsCheapUntilWrite(t *testing.T) {
	a := New()
	b := a.Copy()
	if a.d != b.d {
		t.Fatal("Copy() deep-copied the state eagerly")
	}
	b.SetFontBold(true)
	if a.d == b.d {
		t.Fatal("mutation did not fork the shared state")
	}
	// Further writes through b stay on its private copy.
	d := b.d
	b.SetFontItalic(true)
	if b.d != d {
		t.Error("second mutation forked again despite exclusive ownership")
	}
}

func TestMutatorsInvalidateXfIndex(t *testing.T) {
	mutators := []struct {
		name string
		call func(*Format)
	}{
		{"SetNumberFormatIndex", func(f *Format) { f.SetNumberFormatIndex(14) }},
		{"SetNumberFormat", func(f *Format) { f.SetNumberFormat("0.00") }},
		{"SetFontSize", func(f *Format) { f.SetFontSize(16) }},
		{"SetFontBold", func(f *Format) { f.SetFontBold(true) }},
		{"SetFontName", func(f *Format) { f.SetFontName("Courier New") }},
		{"SetFontColor", func(f *Format) { f.SetFontColor(RGB(0, 0, 0xff)) }},
		{"SetLeftBorderStyle", func(f *Format) { f.SetLeftBorderStyle(BorderDashed) }},
		{"SetDiagonalBorderKind", func(f *Format) { f.SetDiagonalBorderKind(DiagonalBorderUp) }},
		{"SetFillPattern", func(f *Format) { f.SetFillPattern(PatternGray125) }},
		{"SetPatternBackgroundColor", func(f *Format) { f.SetPatternBackgroundColor(RGB(1, 2, 3)) }},
		{"SetHorizontalAlignment", func(f *Format) { f.SetHorizontalAlignment(AlignRight) }},
		{"SetVerticalAlignment", func(f *Format) { f.SetVerticalAlignment(AlignTop) }},
		{"SetTextWrap", func(f *Format) { f.SetTextWrap(true) }},
		{"SetRotation", func(f *Format) { f.SetRotation(90) }},
		{"SetIndent", func(f *Format) { f.SetIndent(2) }},
		{"SetShrinkToFit", func(f *Format) { f.SetShrinkToFit(true) }},
		{"SetHidden", func(f *Format) { f.SetHidden(true) }},
		{"SetLocked", func(f *Format) { f.SetLocked(true) }},
	}
	for _, tt := range mutators {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			f.FormatKey()
			f.SetXfIndex(5)
			f.SetDxfIndex(7)
			if !f.XfIndexValid() {
				t.Fatal("XfIndexValid() = false right after SetXfIndex")
			}
			if !f.DxfIndexValid() {
				t.Fatal("DxfIndexValid() = false right after SetDxfIndex")
			}
			tt.call(f)
			if f.XfIndexValid() {
				t.Error("XfIndexValid() = true after a mutation")
			}
			if f.DxfIndexValid() {
				t.Error("DxfIndexValid() = true after a mutation")
			}
			// Re-registration restores validity.
			f.FormatKey()
			f.SetXfIndex(6)
			if !f.XfIndexValid() {
				t.Error("XfIndexValid() = false after re-assignment")
			}
		})
	}
}

func TestBundleIndexInvalidation(t *testing.T) {
	f := New()
	f.FontKey()
	f.SetFontIndex(3)
	if !f.FontIndexValid() {
		t.Fatal("FontIndexValid() = false right after SetFontIndex")
	}
	f.SetFontBold(true)
	if f.FontIndexValid() {
		t.Error("FontIndexValid() = true after a font mutation")
	}
	// A fill mutation must not touch the font index.
	g := New()
	g.FontKey()
	g.SetFontIndex(0)
	g.SetFillPattern(PatternSolid)
	if !g.FontIndexValid() {
		t.Error("FontIndexValid() = false after an unrelated fill mutation")
	}
	if g.FillIndexValid() {
		t.Error("FillIndexValid() = true without an assigned index")
	}
}

func TestBundleKeyReadStillDirtiesWholeKey(t *testing.T) {
	// Reading a bundle key clears the bundle's dirty flag. The
	// whole-value key must still pick the change up afterwards.
	f := New()
	before := append([]byte(nil), f.FormatKey()...)

	f.SetFontBold(true)
	fontKey := append([]byte(nil), f.FontKey()...)
	after := f.FormatKey()
	if bytes.Equal(before, after) {
		t.Error("FormatKey() missed a font change consumed via FontKey() first")
	}
	if !bytes.Equal(f.FontKey(), fontKey) {
		t.Error("FontKey() unstable across reads")
	}
}

func TestAlignmentNormalization(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Format)
		check func(*testing.T, *Format)
	}{
		{
			name: "indent reset by incompatible horizontal alignment",
			setup: func(f *Format) {
				f.SetIndent(3)
				f.SetHorizontalAlignment(AlignHFill)
			},
			check: func(t *testing.T, f *Format) {
				if f.Indent() != 0 {
					t.Errorf("Indent() = %d, want 0", f.Indent())
				}
				if f.HorizontalAlignment() != AlignHFill {
					t.Errorf("HorizontalAlignment() = %v, want AlignHFill", f.HorizontalAlignment())
				}
			},
		},
		{
			name: "indent survives compatible horizontal alignment",
			setup: func(f *Format) {
				f.SetIndent(3)
				f.SetHorizontalAlignment(AlignRight)
			},
			check: func(t *testing.T, f *Format) {
				if f.Indent() != 3 {
					t.Errorf("Indent() = %d, want 3", f.Indent())
				}
			},
		},
		{
			name: "shrink cleared by justify alignment",
			setup: func(f *Format) {
				f.SetShrinkToFit(true)
				f.SetHorizontalAlignment(AlignHJustify)
			},
			check: func(t *testing.T, f *Format) {
				if f.ShrinkToFit() {
					t.Error("ShrinkToFit() = true after justify alignment")
				}
			},
		},
		{
			name: "wrap clears shrink",
			setup: func(f *Format) {
				f.SetShrinkToFit(true)
				f.SetTextWrap(true)
			},
			check: func(t *testing.T, f *Format) {
				if f.ShrinkToFit() {
					t.Error("ShrinkToFit() = true after enabling wrap")
				}
				if !f.TextWrap() {
					t.Error("TextWrap() = false after enabling wrap")
				}
			},
		},
		{
			name: "shrink clears wrap and demotes justify to left",
			setup: func(f *Format) {
				f.SetHorizontalAlignment(AlignHJustify)
				f.SetTextWrap(true)
				f.SetShrinkToFit(true)
			},
			check: func(t *testing.T, f *Format) {
				if f.TextWrap() {
					t.Error("TextWrap() = true after enabling shrink")
				}
				if f.HorizontalAlignment() != AlignLeft {
					t.Errorf("HorizontalAlignment() = %v, want AlignLeft", f.HorizontalAlignment())
				}
				if !f.ShrinkToFit() {
					t.Error("ShrinkToFit() = false after enabling it")
				}
			},
		},
		{
			name: "indent forces incompatible alignment to left",
			setup: func(f *Format) {
				f.SetHorizontalAlignment(AlignHCenter)
				f.SetIndent(2)
			},
			check: func(t *testing.T, f *Format) {
				if f.HorizontalAlignment() != AlignLeft {
					t.Errorf("HorizontalAlignment() = %v, want AlignLeft", f.HorizontalAlignment())
				}
				if f.Indent() != 2 {
					t.Errorf("Indent() = %d, want 2", f.Indent())
				}
			},
		},
		{
			name: "indent keeps justify alignment",
			setup: func(f *Format) {
				f.SetHorizontalAlignment(AlignHJustify)
				f.SetIndent(1)
			},
			check: func(t *testing.T, f *Format) {
				if f.HorizontalAlignment() != AlignHJustify {
					t.Errorf("HorizontalAlignment() = %v, want AlignHJustify", f.HorizontalAlignment())
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			tt.setup(f)
			tt.check(t, f)
		})
	}
}

func TestIsDateTimeFormat(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Format)
		want  bool
	}{
		{"builtin 14 below date range", func(f *Format) { f.SetNumberFormatIndex(14) }, false},
		{"builtin 15 first date index", func(f *Format) { f.SetNumberFormatIndex(15) }, true},
		{"builtin 16", func(f *Format) { f.SetNumberFormatIndex(16) }, true},
		{"builtin 22 last of first range", func(f *Format) { f.SetNumberFormatIndex(22) }, true},
		{"builtin 23 above first range", func(f *Format) { f.SetNumberFormatIndex(23) }, false},
		{"builtin 45 first time index", func(f *Format) { f.SetNumberFormatIndex(45) }, true},
		{"builtin 47 last time index", func(f *Format) { f.SetNumberFormatIndex(47) }, true},
		{"builtin 48 above second range", func(f *Format) { f.SetNumberFormatIndex(48) }, false},
		{"custom date with colour directive", func(f *Format) { f.SetNumberFormat("[Red]yyyy-mm-dd") }, true},
		{"custom time", func(f *Format) { f.SetNumberFormat("hh:mm:ss") }, true},
		{"custom percent", func(f *Format) { f.SetNumberFormat("0.00%") }, false},
		{"colour directive alone is not a date", func(f *Format) { f.SetNumberFormat("[Green]0.0") }, false},
		{"default format", func(f *Format) {}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			tt.setup(f)
			if got := f.IsDateTimeFormat(); got != tt.want {
				t.Errorf("IsDateTimeFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyNumberFormatIsNoOp(t *testing.T) {
	f := New()
	f.SetNumberFormat("yyyy-mm-dd")
	key := append([]byte(nil), f.FormatKey()...)

	f.SetNumberFormat("")
	if f.NumberFormat() != "yyyy-mm-dd" {
		t.Errorf("NumberFormat() = %q after empty set, want %q", f.NumberFormat(), "yyyy-mm-dd")
	}
	if !bytes.Equal(f.FormatKey(), key) {
		t.Error("key changed after a no-op empty format set")
	}
}

func TestInequalityPerField(t *testing.T) {
	base := func() *Format {
		f := New()
		f.SetFontSize(12)
		f.SetBorderStyle(BorderThin)
		f.SetFillPattern(PatternSolid)
		f.SetNumberFormatIndex(2)
		return f
	}
	changes := []struct {
		name string
		call func(*Format)
	}{
		{"font size", func(f *Format) { f.SetFontSize(13) }},
		{"underline", func(f *Format) { f.SetFontUnderline(FontUnderlineDouble) }},
		{"border edge", func(f *Format) { f.SetTopBorderStyle(BorderThick) }},
		{"fill colour", func(f *Format) { f.SetPatternForegroundColor(RGB(9, 9, 9)) }},
		{"number format", func(f *Format) { f.SetNumberFormatIndex(3) }},
		{"vertical alignment", func(f *Format) { f.SetVerticalAlignment(AlignVCenter) }},
		{"rotation", func(f *Format) { f.SetRotation(45) }},
		{"hidden", func(f *Format) { f.SetHidden(true) }},
		{"locked", func(f *Format) { f.SetLocked(true) }},
	}
	for _, tt := range changes {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			if !a.Equal(b) {
				t.Fatal("identically built formats are not equal")
			}
			tt.call(b)
			if a.Equal(b) {
				t.Errorf("formats still equal after changing %s", tt.name)
			}
		})
	}
}

func TestThemeColorStaysUnresolved(t *testing.T) {
	f := New()
	f.SetFontThemeColor("accent1")
	if got := f.FontColor(); got.Valid() {
		t.Errorf("FontColor() = %v with only a theme reference, want invalid", got)
	}
	if f.FontThemeColor() != "accent1" {
		t.Errorf("FontThemeColor() = %q, want %q", f.FontThemeColor(), "accent1")
	}

	// An explicit colour wins over the theme reference.
	f.SetFontColor(RGB(0x11, 0x22, 0x33))
	if got, want := f.FontColor(), RGB(0x11, 0x22, 0x33); got != want {
		t.Errorf("FontColor() = %v, want %v", got, want)
	}

	g := New()
	g.SetLeftBorderThemeColor("dk1")
	g.SetPatternForegroundThemeColor("lt2")
	if g.LeftBorderColor().Valid() {
		t.Error("LeftBorderColor() valid with only a theme reference")
	}
	if g.PatternForegroundColor().Valid() {
		t.Error("PatternForegroundColor() valid with only a theme reference")
	}
	if g.RightBorderColor().Valid() {
		t.Error("RightBorderColor() valid with no colour at all")
	}
}

func TestAlignmentStrings(t *testing.T) {
	hTests := []struct {
		align HorizontalAlignment
		want  string
	}{
		{AlignHGeneral, ""},
		{AlignLeft, "left"},
		{AlignHCenter, "center"},
		{AlignRight, "right"},
		{AlignHFill, "fill"},
		{AlignHJustify, "justify"},
		{AlignHMerge, "centerContinuous"},
		{AlignHDistributed, "distributed"},
	}
	for _, tt := range hTests {
		f := New()
		f.SetHorizontalAlignment(tt.align)
		if got := f.HorizontalAlignmentString(); got != tt.want {
			t.Errorf("HorizontalAlignmentString() for %d = %q, want %q", tt.align, got, tt.want)
		}
	}

	vTests := []struct {
		align VerticalAlignment
		want  string
	}{
		{AlignBottom, ""},
		{AlignTop, "top"},
		{AlignVCenter, "center"},
		{AlignVJustify, "justify"},
		{AlignVDistributed, "distributed"},
	}
	for _, tt := range vTests {
		f := New()
		f.SetVerticalAlignment(tt.align)
		if got := f.VerticalAlignmentString(); got != tt.want {
			t.Errorf("VerticalAlignmentString() for %d = %q, want %q", tt.align, got, tt.want)
		}
	}
}

func TestAlignmentChanged(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Format)
		want  bool
	}{
		{"default", func(f *Format) {}, false},
		{"horizontal", func(f *Format) { f.SetHorizontalAlignment(AlignHCenter) }, true},
		{"vertical", func(f *Format) { f.SetVerticalAlignment(AlignTop) }, true},
		{"wrap", func(f *Format) { f.SetTextWrap(true) }, true},
		{"rotation", func(f *Format) { f.SetRotation(255) }, true},
		{"indent", func(f *Format) { f.SetIndent(1) }, true},
		{"shrink", func(f *Format) { f.SetShrinkToFit(true) }, true},
		{"unrelated font change", func(f *Format) { f.SetFontBold(true) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			tt.setup(f)
			if got := f.AlignmentChanged(); got != tt.want {
				t.Errorf("AlignmentChanged() = %v, want %v", got, tt.want)
			}
		})
	}
}
