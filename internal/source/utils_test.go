package source

import "testing"

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nxyz")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the '\n' ends line 1
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{6, LineCol{3, 1}}, // empty line
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
	}
	for _, tc := range cases {
		if got := toLineCol(idx, tc.off); got != tc.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	if got := toLineCol(nil, 5); got != (LineCol{1, 6}) {
		t.Errorf("got %+v, want 1:6", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		changed bool
	}{
		{"", "", false},
		{"plain\n", "plain\n", false},
		{"a\r\nb", "a\nb", true},
		{"lone\rcr", "lone\rcr", false},
		{"\r\n\r\n", "\n\n", true},
	}
	for _, tc := range cases {
		out, changed := normalizeCRLF([]byte(tc.in))
		if string(out) != tc.want || changed != tc.changed {
			t.Errorf("normalizeCRLF(%q) = %q/%v, want %q/%v", tc.in, out, changed, tc.want, tc.changed)
		}
	}
}

func TestNormalizeNFC(t *testing.T) {
	// U+0065 U+0301 composes to U+00E9
	decomposed := []byte("café")
	out, changed := normalizeNFC(decomposed)
	if !changed {
		t.Fatal("decomposed input must be normalized")
	}
	if string(out) != "caf\u00e9" {
		t.Errorf("got %q, want %q", out, "caf\u00e9")
	}

	if _, changed := normalizeNFC([]byte("ascii")); changed {
		t.Error("ascii must pass through untouched")
	}
}
