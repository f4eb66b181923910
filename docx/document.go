package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Only body-level paragraphs are
// collected; paragraphs inside tables are not part of the question flow.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// paragraphXML represents a paragraph element (<w:p>).
// Runs are collected in document order, including runs nested in
// hyperlinks, insertions, smart tags, simple fields and content controls.
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
}

// UnmarshalXML walks the paragraph children keeping run order.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.collect(d)
}

// collect consumes tokens up to the end of the current element.
func (p *paragraphXML) collect(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var run runXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, run)
			case "hyperlink", "ins", "smartTag", "fldSimple", "sdt", "sdtContent", "customXml":
				if err := p.collect(d); err != nil {
					return err
				}
			default:
				// Deleted revisions, bookmarks, proofing marks, etc.
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style      styleRefXML       `xml:"pStyle"`
	NumPr      numberingPropsXML `xml:"numPr"`
	OutlineLvl outlineLvlXML     `xml:"outlineLvl"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// numberingPropsXML represents numbering properties for lists.
type numberingPropsXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

// valXML is an element carrying a single w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>) flattened to its text.
type runXML struct {
	Text string
}

// UnmarshalXML concatenates run content in document order.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				sb.WriteString(s)
				continue
			case "tab", "ptab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			case "noBreakHyphen":
				sb.WriteString("-")
			case "sym":
				var sym symXML
				if err := d.DecodeElement(&sym, &t); err != nil {
					return err
				}
				sb.WriteString(sym.text())
				continue
			case "AlternateContent":
				var alt alternateContentXML
				if err := d.DecodeElement(&alt, &t); err != nil {
					return err
				}
				for _, ft := range alt.Fallback.Text {
					sb.WriteString(ft.Value)
				}
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			r.Text = sb.String()
			return nil
		}
	}
}

// symXML represents a symbol character (<w:sym>).
type symXML struct {
	Font string `xml:"font,attr"` // Font name (e.g., "Segoe UI Emoji")
	Char string `xml:"char,attr"` // Hex character code
}

// text returns the symbol as a string. Private Use Area code points only
// render with the symbol font and are dropped.
func (s symXML) text() string {
	code, err := strconv.ParseUint(s.Char, 16, 32)
	if err != nil {
		return ""
	}
	r := rune(code)
	if r < 0x20 || (r >= 0xE000 && r <= 0xF8FF) {
		return ""
	}
	return string(r)
}

// alternateContentXML represents mc:AlternateContent for emoji fallbacks.
type alternateContentXML struct {
	Fallback fallbackXML `xml:"Fallback"`
}

// fallbackXML represents mc:Fallback containing text.
type fallbackXML struct {
	Text []textXML `xml:"t"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Value   string   `xml:",chardata"`
}
