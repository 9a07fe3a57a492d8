package validation

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
)

// ComponentValidator validates component reference sheets. Beyond the schema
// checks it enforces the filename convention tying the file name to the
// subject field, and flags pictographic characters in the body: reference
// sheets use plain text status markers.
type ComponentValidator struct {
	baseValidator
}

// NewComponentValidator constructs a component reference sheet validator.
func NewComponentValidator(reg *schema.Registry, reader FileReader) (*ComponentValidator, error) {
	base, err := newBase(doctype.DocTypeComponent, reg, reader)
	if err != nil {
		return nil, err
	}
	v := &ComponentValidator{baseValidator: base}
	v.specific = v.checkSheet
	return v, nil
}

func (v *ComponentValidator) checkSheet(doc *Document, res *Result) {
	v.checkFilename(doc, res)

	if r, found := findPictograph(doc.Body); found {
		res.Add(SeverityMajor, "", "body contains pictographic character %q; use plain text status markers", r)
	}
}

// checkFilename requires the slugified subject to appear in the file name.
func (v *ComponentValidator) checkFilename(doc *Document, res *Result) {
	subject := ""
	if doc.Meta != nil {
		subject = doc.Meta.GetString("subject")
	}
	if subject == "" || doc.Path == "" {
		return
	}

	slug := slugify(subject)
	name := strings.ToLower(filepath.Base(doc.Path))
	if slug != "" && !strings.Contains(name, slug) {
		res.Add(SeverityMajor, "subject", "filename %q does not reference subject %q (expected %q in the name)", filepath.Base(doc.Path), subject, slug)
	}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases a subject and collapses non-alphanumeric runs to single
// hyphens, matching the generator's file naming convention.
func slugify(s string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// findPictograph returns the first emoji or pictographic rune in the text.
func findPictograph(text string) (rune, bool) {
	for _, r := range text {
		if isPictograph(r) {
			return r, true
		}
	}
	return 0, false
}

func isPictograph(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // symbols, emoticons, supplemental pictographs
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r >= 0x1F000 && r <= 0x1F0FF: // mahjong, dominoes, playing cards
		return true
	case r == 0x2B50 || r == 0x2B55: // star, heavy circle
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors used by emoji
		return true
	}
	return false
}
