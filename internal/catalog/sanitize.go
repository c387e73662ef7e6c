package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML reduces a posting field to plain text. Catalogs imported from
// job boards often carry markup in descriptions; card rendering and search
// both expect text. Fields without markup pass through untouched.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
