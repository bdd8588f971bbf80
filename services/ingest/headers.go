package ingest

import (
	"regexp"

	mserrors "github.com/customeros/notestack/internal/errors"
)

// HeadersField is the form field that carries the forwarded email headers.
const HeadersField = "headers"

var replyToRegex = regexp.MustCompile(`(?m)Reply-To:.*<(.*)>`)

// ExtractSender returns the bracketed address of the first "Reply-To: Name <address>" line.
// The address itself is not validated.
func ExtractSender(headers string) (string, error) {
	matches := replyToRegex.FindStringSubmatch(headers)
	if len(matches) < 2 || matches[1] == "" {
		return "", mserrors.ErrHeaderNotFound
	}
	return matches[1], nil
}
