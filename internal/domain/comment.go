package domain

import "strings"

const orderCommentPrefix = "order="

// ParseOrderComment extracts the order id from an inbound transfer comment.
// Payments carry a text comment of the form "order=<id>"; anything else
// (missing prefix, empty id) yields ErrMalformedComment.
func ParseOrderComment(comment string) (string, error) {
	trimmed := strings.TrimSpace(comment)
	if !strings.HasPrefix(trimmed, orderCommentPrefix) {
		return "", ErrMalformedComment
	}

	id := strings.TrimSpace(strings.TrimPrefix(trimmed, orderCommentPrefix))
	if id == "" {
		return "", ErrMalformedComment
	}

	return id, nil
}
