package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is the minimal selectable-HTML capability the extractor needs:
// query by selector, read text and attributes. Keeping the surface this
// small lets the fallback-chain logic be tested against the capability
// rather than against a concrete HTML library.
type Document struct {
	doc *goquery.Document
}

// ParseDocument parses an HTML string into a Document.
func ParseDocument(htmlContent string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// FirstText returns the trimmed text of the first node matching selector.
// The second return is false when no node matches.
func (d *Document) FirstText(selector string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

// FirstAttr returns the named attribute of the first node matching selector.
func (d *Document) FirstAttr(selector, attr string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Attr(attr)
}

// EachText calls fn with the trimmed text of every node matching selector,
// in document order, until fn returns false.
func (d *Document) EachText(selector string, fn func(text string) bool) {
	d.doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		return fn(strings.TrimSpace(s.Text()))
	})
}

// Text returns the text content of the whole document.
func (d *Document) Text() string {
	return d.doc.Text()
}
