// Package response writes plain text and HTML responses.
package response

// ContentType constants
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)
