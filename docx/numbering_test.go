package docx

import "testing"

const testNumbering = `
<w:abstractNum w:abstractNumId="0">
  <w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/></w:lvl>
  <w:lvl w:ilvl="1"><w:start w:val="1"/><w:numFmt w:val="lowerLetter"/><w:lvlText w:val="%2)"/></w:lvl>
  <w:lvl w:ilvl="2"><w:start w:val="1"/><w:numFmt w:val="lowerRoman"/><w:lvlText w:val="%1.%2.%3"/></w:lvl>
</w:abstractNum>
<w:abstractNum w:abstractNumId="1">
  <w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/></w:lvl>
</w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>
<w:num w:numId="3">
  <w:abstractNumId w:val="0"/>
  <w:lvlOverride w:ilvl="0"><w:startOverride w:val="5"/></w:lvlOverride>
</w:num>`

func listParagraph(numID, ilvl, text string) string {
	return `<w:p><w:pPr><w:numPr><w:ilvl w:val="` + ilvl + `"/><w:numId w:val="` + numID +
		`"/></w:numPr></w:pPr><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func TestReader_NumberingLabels(t *testing.T) {
	body := listParagraph("1", "0", "What is your name?") +
		listParagraph("2", "0", "( ) Alice") +
		listParagraph("2", "0", "( ) Bob") +
		listParagraph("1", "0", "Describe your role.") +
		listParagraph("1", "1", "first part") +
		listParagraph("1", "1", "second part") +
		listParagraph("1", "2", "deep") +
		listParagraph("1", "0", "Third?") +
		listParagraph("1", "1", "restarted") +
		listParagraph("3", "0", "Override")

	data := buildTestDOCX(t, body, map[string]string{"word/numbering.xml": numberingPart(testNumbering)})
	r, err := Open(writeTestDOCX(t, data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	want := []string{
		"What is your name?",
		"( ) Alice",
		"( ) Bob",
		"Describe your role.",
		"first part",
		"second part",
		"deep",
		"Third?",
		"restarted",
		"Override",
	}
	assertTexts(t, r, want)

	r.SetNumberingLabels(true)
	want = []string{
		"1. What is your name?",
		"( ) Alice",
		"( ) Bob",
		"2. Describe your role.",
		"a) first part",
		"b) second part",
		"2.b.i deep",
		"3. Third?",
		"a) restarted",
		"5. Override",
	}
	assertTexts(t, r, want)

	// Labels are recomputed from the start on every call.
	assertTexts(t, r, want)

	paras := r.Paragraphs()
	if !paras[0].ListItem || paras[4].ListLevel != 1 {
		t.Errorf("list metadata not set: %+v %+v", paras[0], paras[4])
	}
}

func TestReader_NumberingFromStyle(t *testing.T) {
	styles := `
<w:style w:type="paragraph" w:styleId="QuizQuestion">
  <w:name w:val="Quiz Question"/>
  <w:pPr><w:numPr><w:numId w:val="1"/></w:numPr></w:pPr>
</w:style>`
	body := `<w:p><w:pPr><w:pStyle w:val="QuizQuestion"/></w:pPr><w:r><w:t>Styled?</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="QuizQuestion"/></w:pPr><w:r><w:t>Again?</w:t></w:r></w:p>`

	data := buildTestDOCX(t, body, map[string]string{
		"word/styles.xml":    stylesPart(styles),
		"word/numbering.xml": numberingPart(testNumbering),
	})
	r, err := Open(writeTestDOCX(t, data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	r.SetNumberingLabels(true)
	assertTexts(t, r, []string{"1. Styled?", "2. Again?"})
}

func TestReader_NumberingWithoutDefinitions(t *testing.T) {
	body := listParagraph("7", "0", "No definitions")

	r, err := Open(createTestDOCX(t, body))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	r.SetNumberingLabels(true)
	assertTexts(t, r, []string{"No definitions"})
}

func assertTexts(t *testing.T, r *Reader, want []string) {
	t.Helper()
	paras := r.Paragraphs()
	if len(paras) != len(want) {
		t.Fatalf("got %d paragraphs, want %d", len(paras), len(want))
	}
	for i, p := range paras {
		if p.Text != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, p.Text, want[i])
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n      int
		format string
		want   string
	}{
		{1, "decimal", "1"},
		{12, "decimal", "12"},
		{3, "decimalZero", "03"},
		{12, "decimalZero", "12"},
		{1, "lowerLetter", "a"},
		{26, "upperLetter", "Z"},
		{27, "upperLetter", "AA"},
		{28, "lowerLetter", "bb"},
		{4, "upperRoman", "IV"},
		{9, "lowerRoman", "ix"},
		{1994, "upperRoman", "MCMXCIV"},
		{0, "upperRoman", "0"},
		{7, "cardinalText", "7"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.n, tt.format); got != tt.want {
			t.Errorf("formatNumber(%d, %q) = %q, want %q", tt.n, tt.format, got, tt.want)
		}
	}
}

func TestExpandLevelText(t *testing.T) {
	render := func(level int) string { return string(rune('A' + level)) }
	tests := []struct {
		pattern string
		want    string
	}{
		{"%1.", "A."},
		{"%1.%2)", "A.B)"},
		{"(%3)", "(C)"},
		{"100%", "100%"},
		{"%0", "%0"},
	}
	for _, tt := range tests {
		if got := expandLevelText(tt.pattern, render); got != tt.want {
			t.Errorf("expandLevelText(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}
