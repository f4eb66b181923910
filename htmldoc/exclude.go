package htmldoc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ExclusionMode controls how navigation, headers and footers are filtered
// out of exported quiz pages.
type ExclusionMode int

const (
	// ExcludeNone keeps all body content.
	ExcludeNone ExclusionMode = iota

	// ExcludeExplicit skips <nav>, <aside> and the ARIA roles navigation and
	// complementary. <header> and <footer> are skipped only as direct
	// children of <body> or of a single top-level wrapper.
	ExcludeExplicit

	// ExcludeStandard adds class and id pattern matching (nav, menu,
	// footer, sidebar and similar) to ExcludeExplicit.
	ExcludeStandard

	// ExcludeAggressive also drops link-heavy blocks.
	ExcludeAggressive
)

var boilerplatePattern = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumbs?|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside|cookie-banner)([^a-z]|$)`)

// exclusionChecker decides which elements are page furniture.
type exclusionChecker struct {
	mode    ExclusionMode
	body    *html.Node
	wrapper *html.Node // single top-level div/main, if any
	density map[*html.Node]float64
}

func newExclusionChecker(mode ExclusionMode, doc *html.Node) *exclusionChecker {
	ec := &exclusionChecker{
		mode:    mode,
		density: make(map[*html.Node]float64),
	}
	ec.body = findElement(doc, "body")
	if ec.body == nil {
		ec.body = doc
	}
	ec.wrapper = topLevelWrapper(ec.body)
	return ec
}

// topLevelWrapper finds the single structural wrapper of
// <body><div id="wrapper">...</div></body>.
func topLevelWrapper(body *html.Node) *html.Node {
	var wrapper *html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "div", "main":
			if wrapper != nil {
				return nil
			}
			wrapper = c
		case "script", "style", "noscript", "template":
		default:
			return nil
		}
	}
	return wrapper
}

func (ec *exclusionChecker) shouldExclude(n *html.Node) bool {
	if n.Type != html.ElementNode || ec.mode == ExcludeNone {
		return false
	}
	if ec.explicit(n) {
		return true
	}
	if ec.mode >= ExcludeStandard && ec.byPattern(n) {
		return true
	}
	return ec.mode >= ExcludeAggressive && ec.linkHeavy(n)
}

func (ec *exclusionChecker) explicit(n *html.Node) bool {
	switch n.Data {
	case "nav", "aside":
		return true
	case "header", "footer":
		return ec.isTopLevel(n)
	}

	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		return ec.isTopLevel(n)
	}
	return false
}

func (ec *exclusionChecker) isTopLevel(n *html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	return parent == ec.body || (ec.wrapper != nil && parent == ec.wrapper)
}

func (ec *exclusionChecker) byPattern(n *html.Node) bool {
	if class := getAttr(n, "class"); class != "" && boilerplatePattern.MatchString(class) {
		return true
	}
	id := getAttr(n, "id")
	return id != "" && boilerplatePattern.MatchString(id)
}

// linkHeavy reports whether more than 60% of a container's text sits
// inside at least four links.
func (ec *exclusionChecker) linkHeavy(n *html.Node) bool {
	switch n.Data {
	case "div", "section", "ul", "ol":
	default:
		return false
	}
	return ec.linkDensity(n) > 0.6 && countLinks(n) >= 4
}

func (ec *exclusionChecker) linkDensity(n *html.Node) float64 {
	if d, ok := ec.density[n]; ok {
		return d
	}
	var d float64
	if total := textLength(n); total > 0 {
		d = float64(linkTextLength(n)) / float64(total)
	}
	ec.density[n] = d
	return d
}

func textLength(n *html.Node) int {
	if n.Type == html.TextNode {
		return len(strings.TrimSpace(n.Data))
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += textLength(c)
	}
	return total
}

func linkTextLength(n *html.Node) int {
	if n.Type == html.ElementNode && n.Data == "a" {
		return textLength(n)
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += linkTextLength(c)
	}
	return total
}

func countLinks(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode && n.Data == "a" {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countLinks(c)
	}
	return count
}
