// Package sanitize strips markup from user-supplied free text before it
// is persisted. Ticket descriptions and comments are rendered back to
// browsers, so stored values must never carry HTML.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
