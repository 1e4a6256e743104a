package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// sanitizeText strips all HTML and trims the result. Applied to every
// user-supplied text field at write time so reads never need to re-clean.
func sanitizeText(input string) string {
	return strings.TrimSpace(htmlPolicy.Sanitize(input))
}
