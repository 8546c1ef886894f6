package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_HeadlineAndMailto(t *testing.T) {
	html := `<html><body>
		<h1>Jane Doe</h1>
		<a href="mailto:jane@example.com">email me</a>
	</body></html>`

	resume := Extract(html)

	assert.Equal(t, "Jane Doe", resume.Name)
	assert.Equal(t, "jane@example.com", resume.Email)
}

func TestExtract_NameClassFallback(t *testing.T) {
	html := `<div class="name">John Smith</div>`

	resume := Extract(html)
	assert.Equal(t, "John Smith", resume.Name)
}

func TestExtract_HeadlineWinsOverClass(t *testing.T) {
	html := `<h1>Jane Doe</h1><div class="name">Someone Else</div>`

	resume := Extract(html)
	assert.Equal(t, "Jane Doe", resume.Name)
}

func TestExtract_ContactSectionName(t *testing.T) {
	html := `<div id="contact"><p>Name: Mary Jane-Watson</p></div>`

	resume := Extract(html)
	assert.Equal(t, "Mary Jane-Watson", resume.Name)
}

func TestExtract_RejectsNonNameText(t *testing.T) {
	// A selector hit that is not a plausible name is reset to empty.
	html := `<h1>John123 (candidate #42)</h1>`

	resume := Extract(html)
	assert.Empty(t, resume.Name)
}

func TestExtract_NoNameMarkers(t *testing.T) {
	html := `<div><p>hello world</p></div>`

	resume := Extract(html)
	assert.Empty(t, resume.Name)
}

func TestExtract_EmailParagraphFallback(t *testing.T) {
	html := `<p>Email: john@example.org</p>`

	resume := Extract(html)
	assert.Equal(t, "john@example.org", resume.Email)
}

func TestExtract_PhoneTelAnchor(t *testing.T) {
	html := `<a href="tel:555-123-4567">call</a>`

	resume := Extract(html)
	assert.Equal(t, "555-123-4567", resume.Phone)
}

func TestExtract_PhoneParagraphFallback(t *testing.T) {
	html := `<p>Phone: 555-987-6543</p>`

	resume := Extract(html)
	assert.Equal(t, "555-987-6543", resume.Phone)
}

func TestExtract_PhoneHyphenHeuristicFalsePositive(t *testing.T) {
	// Accepted limitation: with no tel: anchor, the first hyphenated
	// paragraph is taken as the phone, whatever it says.
	html := `<p>Re-certified instructor</p>`

	resume := Extract(html)
	assert.Equal(t, "Re-certified instructor", resume.Phone)
}

func TestExtract_SectionsByIDAndClass(t *testing.T) {
	html := `<html><body>
		<div id="experience">Built distributed systems at Acme.</div>
		<section class="education">BS Computer Science</section>
		<div class="skills">Go, Python, Kubernetes</div>
	</body></html>`

	resume := Extract(html)

	assert.Equal(t, "Built distributed systems at Acme.", resume.ExperienceText)
	assert.Equal(t, "BS Computer Science", resume.EducationText)
	assert.Equal(t, "Go, Python, Kubernetes", resume.SkillsText)
}

func TestExtract_MissingSectionsAreEmpty(t *testing.T) {
	resume := Extract(`<p>nothing structured here</p>`)

	assert.Empty(t, resume.ExperienceText)
	assert.Empty(t, resume.EducationText)
	assert.Empty(t, resume.SkillsText)
}

func TestExtract_NeverFails(t *testing.T) {
	// Malformed markup still yields a best-effort structure.
	assert.NotPanics(t, func() {
		Extract("<div><<<not really html")
		Extract("")
	})
}

func TestDocument_FirstTextMissingSelector(t *testing.T) {
	doc, err := ParseDocument(`<p>hi</p>`)
	assert.NoError(t, err)

	_, ok := doc.FirstText("h1")
	assert.False(t, ok)

	text, ok := doc.FirstText("p")
	assert.True(t, ok)
	assert.Equal(t, "hi", text)
}
