// Package utils contains useful functions
package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`(?i)^https?://`)
var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
var proposedCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8}$`)

// reservedSegments are path segments the redirect route must never hijack.
var reservedSegments = map[string]struct{}{
	"api":         {},
	"info":        {},
	"speedometer": {},
	"assets":      {},
	"ping":        {},
	"analytics":   {},
	"metadata":    {},
}

// NormalizeURL trims the given string and prepends https:// unless an
// http(s) scheme is already present.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if schemePattern.MatchString(trimmed) {
		return trimmed
	}
	return "https://" + trimmed
}

// IsURL Is a helper function that checks if the string is a valid absolute URL
func IsURL(payload string) bool {
	parsedURL, err := url.Parse(payload)
	if err != nil {
		return false
	}
	if parsedURL.Host == "" {
		return false
	}
	return parsedURL.Scheme == "https" || parsedURL.Scheme == "http"
}

// IsResolvableCode reports whether the path segment may be looked up as a
// short code: right alphabet and not one of the reserved app routes.
func IsResolvableCode(code string) bool {
	if !codePattern.MatchString(code) {
		return false
	}
	_, reserved := reservedSegments[code]
	return !reserved
}

// IsValidProposedCode reports whether a client-proposed code is acceptable:
// exactly the fixed length over the code alphabet.
func IsValidProposedCode(code string) bool {
	return proposedCodePattern.MatchString(code)
}
