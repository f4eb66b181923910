package docx

import (
	"strconv"
	"strings"
)

// maxLevels is the number of list levels Word supports (ilvl 0-8).
const maxLevels = 9

// levelFormat is the resolved format of one numbering level.
type levelFormat struct {
	format  string // numFmt value
	text    string // lvlText pattern such as "%1." or "%1.%2)"
	startAt int
}

// ordered reports whether the level renders a counter rather than a bullet.
func (lf levelFormat) ordered() bool {
	return lf.format != "bullet" && lf.format != "none" && strings.Contains(lf.text, "%")
}

// NumberingResolver resolves numbering definitions from numbering.xml.
type NumberingResolver struct {
	abstractNums map[string]*abstractNumXML // abstractNumId -> definition
	nums         map[string]*numXML         // numId -> instance
}

// NewNumberingResolver creates a resolver from parsed numbering.xml.
func NewNumberingResolver(numbering *numberingXML) *NumberingResolver {
	nr := &NumberingResolver{
		abstractNums: make(map[string]*abstractNumXML),
		nums:         make(map[string]*numXML),
	}

	if numbering == nil {
		return nr
	}

	for i := range numbering.AbstractNums {
		an := &numbering.AbstractNums[i]
		nr.abstractNums[an.AbstractNumID] = an
	}
	for i := range numbering.Nums {
		num := &numbering.Nums[i]
		nr.nums[num.NumID] = num
	}

	return nr
}

// level returns the format of a level for a numbering instance.
func (nr *NumberingResolver) level(numID string, level int) (levelFormat, bool) {
	num, ok := nr.nums[numID]
	if !ok {
		return levelFormat{}, false
	}
	abstractNum, ok := nr.abstractNums[num.AbstractNumID.Val]
	if !ok {
		return levelFormat{}, false
	}

	levelStr := strconv.Itoa(level)
	for _, lvl := range abstractNum.Levels {
		if lvl.ILvl != levelStr {
			continue
		}
		lf := levelFormat{format: lvl.NumFmt.Val, text: lvl.LvlText.Val, startAt: 1}
		if lf.format == "" {
			lf.format = "decimal"
		}
		if s, err := strconv.Atoi(lvl.Start.Val); err == nil {
			lf.startAt = s
		}
		for _, o := range num.Overrides {
			if o.ILvl == levelStr {
				if s, err := strconv.Atoi(o.StartOverride.Val); err == nil {
					lf.startAt = s
				}
			}
		}
		return lf, true
	}

	return levelFormat{}, false
}

// IsListParagraph returns true if the paragraph has numbering properties.
func (nr *NumberingResolver) IsListParagraph(numID string) bool {
	return numID != "" && numID != "0"
}

// labeler renders automatic list numbers in document order.
type labeler struct {
	resolver *NumberingResolver
	counters map[string]*[maxLevels]int
	started  map[string]*[maxLevels]bool
}

func newLabeler(resolver *NumberingResolver) *labeler {
	return &labeler{
		resolver: resolver,
		counters: make(map[string]*[maxLevels]int),
		started:  make(map[string]*[maxLevels]bool),
	}
}

// next advances the counter for numID at level and returns the rendered
// label, or "" for bullets and unknown definitions.
func (l *labeler) next(numID string, level int) string {
	if !l.resolver.IsListParagraph(numID) || level < 0 || level >= maxLevels {
		return ""
	}
	lf, ok := l.resolver.level(numID, level)
	if !ok {
		return ""
	}

	counters, ok := l.counters[numID]
	if !ok {
		counters = new([maxLevels]int)
		l.counters[numID] = counters
		l.started[numID] = new([maxLevels]bool)
	}
	started := l.started[numID]

	if started[level] {
		counters[level]++
	} else {
		counters[level] = lf.startAt
		started[level] = true
	}
	// A higher level item restarts every deeper level.
	for deeper := level + 1; deeper < maxLevels; deeper++ {
		started[deeper] = false
	}

	if !lf.ordered() {
		return ""
	}

	return expandLevelText(lf.text, func(n int) string {
		if n == level {
			return formatNumber(counters[n], lf.format)
		}
		parent, ok := l.resolver.level(numID, n)
		if !ok {
			return ""
		}
		value := parent.startAt
		if started[n] {
			value = counters[n]
		}
		return formatNumber(value, parent.format)
	})
}

// expandLevelText replaces %1..%9 placeholders using render(level).
func expandLevelText(pattern string, render func(level int) string) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '%' && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			sb.WriteString(render(int(pattern[i+1] - '1')))
			i++
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// formatNumber renders n in a Word number format.
func formatNumber(n int, format string) string {
	switch format {
	case "lowerLetter":
		return strings.ToLower(letters(n))
	case "upperLetter":
		return letters(n)
	case "lowerRoman":
		return strings.ToLower(roman(n))
	case "upperRoman":
		return roman(n)
	case "decimalZero":
		if n >= 0 && n < 10 {
			return "0" + strconv.Itoa(n)
		}
		return strconv.Itoa(n)
	default:
		return strconv.Itoa(n)
	}
}

// letters renders 1 -> A, 26 -> Z, 27 -> AA, 28 -> BB as Word does.
func letters(n int) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	letter := string(rune('A' + (n-1)%26))
	return strings.Repeat(letter, (n-1)/26+1)
}

// roman renders n as an upper-case Roman numeral.
func roman(n int) string {
	if n < 1 || n > 3999 {
		return strconv.Itoa(n)
	}
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var sb strings.Builder
	for i, v := range values {
		for n >= v {
			sb.WriteString(symbols[i])
			n -= v
		}
	}
	return sb.String()
}
