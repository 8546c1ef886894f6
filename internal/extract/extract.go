// Package extract pulls contact details and section text out of a
// loosely-structured HTML resume using ordered fallback chains.
//
// Extraction never fails a request: every field is best-effort and comes
// back empty when nothing in the chain matched. Turning a missing field
// into a formatting defect is the scoring service's job.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

var (
	// namePattern is the document-wide last-resort lookup for a labelled name.
	namePattern = regexp.MustCompile(`Name:\s*([A-Z\s-]+)`)

	// validName guards against a failed selector capturing non-name text.
	validName = regexp.MustCompile(`^[A-Za-z\s-]+$`)
)

// Extract parses an HTML resume and returns a best-effort ParsedResume.
// It never returns an error; fields that cannot be found stay empty.
func Extract(htmlContent string) types.ParsedResume {
	doc, err := ParseDocument(htmlContent)
	if err != nil {
		return types.ParsedResume{}
	}

	return types.ParsedResume{
		Name:           extractName(doc),
		Email:          extractEmail(doc),
		Phone:          extractPhone(doc),
		ExperienceText: extractSection(doc, "experience"),
		EducationText:  extractSection(doc, "education"),
		SkillsText:     extractSection(doc, "skills"),
	}
}

// extractName walks the name fallback chain: headline selectors first,
// then the contact section, then a document-wide labelled lookup.
func extractName(doc *Document) string {
	name := ""

	selectors := []string{"h1", ".name", "strong.name", "#contact p", "#contact h2 + p"}
	for _, selector := range selectors {
		if text, ok := doc.FirstText(selector); ok && text != "" {
			name = text
			break
		}
	}

	if name == "" {
		doc.EachText("#contact p", func(text string) bool {
			if strings.Contains(text, "Name") {
				name = text
				return false
			}
			return true
		})
	}

	if name == "" {
		if m := namePattern.FindStringSubmatch(doc.Text()); m != nil {
			name = m[1]
		}
	}

	name = stripLabel(name, "Name:")
	if name != "" && !validName.MatchString(name) {
		return ""
	}
	return name
}

// extractEmail prefers a mailto: anchor, falling back to the first
// paragraph containing an @ sign.
func extractEmail(doc *Document) string {
	if href, ok := doc.FirstAttr(`a[href^="mailto:"]`, "href"); ok {
		return strings.TrimSpace(strings.TrimPrefix(href, "mailto:"))
	}

	email := ""
	doc.EachText("p", func(text string) bool {
		if strings.Contains(text, "@") {
			email = stripLabel(text, "Email:")
			return false
		}
		return true
	})
	return email
}

// extractPhone prefers a tel: anchor, falling back to the first paragraph
// containing a hyphen. The hyphen heuristic is an accepted limitation: it
// can latch onto unrelated hyphenated text when no tel: anchor exists.
func extractPhone(doc *Document) string {
	if href, ok := doc.FirstAttr(`a[href^="tel:"]`, "href"); ok {
		return strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
	}

	phone := ""
	doc.EachText("p", func(text string) bool {
		if strings.Contains(text, "-") {
			phone = stripLabel(text, "Phone:")
			return false
		}
		return true
	})
	return phone
}

// extractSection returns the concatenated text of a section identified by
// id or class. No sub-structure is parsed; the matcher consumes the blob.
func extractSection(doc *Document, section string) string {
	if text, ok := doc.FirstText("#" + section); ok {
		return text
	}
	if text, ok := doc.FirstText("." + section); ok {
		return text
	}
	return ""
}

// stripLabel removes a leading "Label:" marker and surrounding whitespace.
func stripLabel(text, label string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, label) {
		text = strings.TrimSpace(strings.TrimPrefix(text, label))
	}
	return text
}
