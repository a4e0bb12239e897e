package response

import (
	"log/slog"
	"net/http"
)

// Text sends a plain text response
func Text(w http.ResponseWriter, text string, code int) {
	write(w, ContentTypeText, text, code)
}

// HTML sends an HTML response
func HTML(w http.ResponseWriter, html string, code int) {
	write(w, ContentTypeHTML, html, code)
}

func write(w http.ResponseWriter, contentType, body string, code int) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)

	if _, err := w.Write([]byte(body)); err != nil {
		// Headers are already written, nothing else can be sent.
		slog.Default().Error("failed to write response",
			slog.String("content_type", contentType),
			slog.String("err", err.Error()))
	}
}
