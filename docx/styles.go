package docx

import (
	"encoding/xml"
	"strings"
)

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	XMLName xml.Name          `xml:"style"`
	Type    string            `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string            `xml:"styleId,attr"`
	Name    valXML            `xml:"name"`
	BasedOn valXML            `xml:"basedOn"`
	PPr     paragraphPropsXML `xml:"pPr"`
}

// numberingXML represents word/numbering.xml
type numberingXML struct {
	XMLName      xml.Name         `xml:"numbering"`
	AbstractNums []abstractNumXML `xml:"abstractNum"`
	Nums         []numXML         `xml:"num"`
}

// abstractNumXML represents an abstract numbering definition.
type abstractNumXML struct {
	AbstractNumID string   `xml:"abstractNumId,attr"`
	Levels        []lvlXML `xml:"lvl"`
}

// lvlXML represents a numbering level.
type lvlXML struct {
	ILvl    string `xml:"ilvl,attr"`
	Start   valXML `xml:"start"`
	NumFmt  valXML `xml:"numFmt"`  // decimal, bullet, lowerLetter, upperLetter, lowerRoman, upperRoman
	LvlText valXML `xml:"lvlText"` // e.g., "%1.", "%1.%2"
}

// numXML represents a numbering instance.
type numXML struct {
	NumID         string           `xml:"numId,attr"`
	AbstractNumID valXML           `xml:"abstractNumId"`
	Overrides     []lvlOverrideXML `xml:"lvlOverride"`
}

// lvlOverrideXML restarts or redefines a level for one numbering instance.
type lvlOverrideXML struct {
	ILvl          string `xml:"ilvl,attr"`
	StartOverride valXML `xml:"startOverride"`
}

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata)
type corePropertiesXML struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Subject     string   `xml:"subject"`
	Creator     string   `xml:"creator"`
	Keywords    string   `xml:"keywords"`
	Description string   `xml:"description"`
	Created     string   `xml:"created"`
	Modified    string   `xml:"modified"`
}

// appPropertiesXML represents docProps/app.xml
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
}

// styleIndex answers style lookups with basedOn inheritance.
type styleIndex struct {
	styles map[string]*styleDefXML
}

func newStyleIndex(styles *stylesXML) *styleIndex {
	si := &styleIndex{styles: make(map[string]*styleDefXML)}
	if styles == nil {
		return si
	}
	for i := range styles.Styles {
		style := &styles.Styles[i]
		si.styles[style.StyleID] = style
	}
	return si
}

// name returns the display name of a style, or "" if unknown.
func (si *styleIndex) name(styleID string) string {
	if def, ok := si.styles[styleID]; ok {
		return def.Name.Val
	}
	return ""
}

// chain returns the style and its ancestors, derived first.
func (si *styleIndex) chain(styleID string) []*styleDefXML {
	var chain []*styleDefXML
	visited := make(map[string]bool)
	for current := styleID; current != "" && !visited[current]; {
		visited[current] = true
		def, ok := si.styles[current]
		if !ok {
			break
		}
		chain = append(chain, def)
		current = def.BasedOn.Val
	}
	return chain
}

// numbering returns the numbering properties a style applies, if any.
func (si *styleIndex) numbering(styleID string) (numID string, ilvl string) {
	for _, def := range si.chain(styleID) {
		if def.PPr.NumPr.NumID.Val != "" {
			return def.PPr.NumPr.NumID.Val, def.PPr.NumPr.ILvl.Val
		}
	}
	return "", ""
}

// heading determines if a style ID represents a heading and its level.
func (si *styleIndex) heading(styleID string) (bool, int) {
	if isHeading, level := detectBuiltInHeading(styleID); isHeading {
		return true, level
	}

	for _, def := range si.chain(styleID) {
		if def.PPr.OutlineLvl.Val != "" {
			// OutlineLvl is 0-based in OOXML
			if level := parseOutlineLevel(def.PPr.OutlineLvl.Val); level >= 0 {
				return true, level + 1
			}
		}
		name := strings.ToLower(def.Name.Val)
		if strings.HasPrefix(name, "heading") {
			for i := 1; i <= 9; i++ {
				if strings.HasSuffix(name, " "+string(rune('0'+i))) {
					return true, i
				}
			}
			return true, 1
		}
		if isHeading, level := detectBuiltInHeading(def.StyleID); isHeading {
			return true, level
		}
	}

	return false, 0
}

// detectBuiltInHeading checks for Word's built-in heading style IDs.
func detectBuiltInHeading(styleID string) (bool, int) {
	id := strings.ToLower(styleID)

	headingMap := map[string]int{
		"heading1": 1, "heading2": 2, "heading3": 3,
		"heading4": 4, "heading5": 5, "heading6": 6,
		"heading7": 7, "heading8": 8, "heading9": 9,
		"title": 1, "subtitle": 2,
	}

	if level, ok := headingMap[id]; ok {
		return true, level
	}

	return false, 0
}

// parseOutlineLevel parses an outline level string to an integer.
func parseOutlineLevel(s string) int {
	if s == "" {
		return -1
	}
	level := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
		level = level*10 + int(c-'0')
	}
	if level <= 8 {
		return level
	}
	return -1
}
