package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText strips markup from an HTML document and returns the text a
// reader would see, so page dumps can be fed straight into
// ClaimExtractor.Extract. Input that fails to parse is returned unchanged;
// the claim heuristics tolerate raw text.
func VisibleText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String())
}

// LooksLikeHTML is a cheap sniff used by the analyze entry points to decide
// whether input needs markup stripping first.
func LooksLikeHTML(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">")
}
