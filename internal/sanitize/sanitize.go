// Package sanitize strips markup from user-supplied text before it is
// persisted or embedded in a notification email.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// policy allows no tags and no attributes.
var policy = bluemonday.StrictPolicy()

// Text returns s with all markup tags and attributes removed, keeping only
// text content (including the text inside script/style elements). It never
// fails; the empty string maps to the empty string.
func Text(s string) string {
	// The tokenizer pass keeps raw-text content that bluemonday would
	// discard; the policy pass guarantees no markup survives, since
	// raw-text content may itself contain tags.
	return policy.Sanitize(stripTags(s))
}

// stripTags concatenates the text tokens of s, dropping all tags.
func stripTags(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
