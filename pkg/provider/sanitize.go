package provider

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// cleanText strips all markup from provider-supplied text
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// cleanHTML keeps safe markup only, for article bodies
func cleanHTML(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}
