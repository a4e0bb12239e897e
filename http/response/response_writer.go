package response

import "net/http"

// ResponseWriterRecorder wraps an http.ResponseWriter and records the status
// code and the number of bytes written, for access logs and metrics.
//
// Example:
//
//	wr := response.NewResponseWriterRecorder(w)
//	next.ServeHTTP(wr, r)
//	logger.Info("response", "status", wr.StatusCode(), "size", wr.Size())
type ResponseWriterRecorder struct {
	http.ResponseWriter
	code        int
	size        int
	wroteHeader bool
}

// NewResponseWriterRecorder wraps w. A w that is already a recorder is
// returned as is, so nested middleware share one recorder.
func NewResponseWriterRecorder(w http.ResponseWriter) *ResponseWriterRecorder {
	if rw, ok := w.(*ResponseWriterRecorder); ok {
		return rw
	}

	return &ResponseWriterRecorder{
		ResponseWriter: w,
		code:           http.StatusOK,
	}
}

func (w *ResponseWriterRecorder) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriterRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(w.code)
	}

	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *ResponseWriterRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *ResponseWriterRecorder) StatusCode() int {
	return w.code
}

func (w *ResponseWriterRecorder) Size() int {
	return w.size
}

// WroteHeader reports whether a status line has been sent.
func (w *ResponseWriterRecorder) WroteHeader() bool {
	return w.wroteHeader
}
