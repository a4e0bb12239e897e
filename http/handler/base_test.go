package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/stretchr/testify/assert"

	"github.com/alextanhongpin/gcd/http/handler"
	"github.com/alextanhongpin/gcd/http/request"
	"github.com/alextanhongpin/gcd/types/number"
)

func TestStatusCodeAndMessage(t *testing.T) {
	_, parseErr := number.ParseUint64s([]string{"dog"})

	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{
			name: "parse error",
			err:  parseErr,
			code: http.StatusBadRequest,
			msg:  `error parsing "dog"`,
		},
		{
			name: "wrapped parse error",
			err:  fmt.Errorf("compute: %w", parseErr),
			code: http.StatusBadRequest,
			msg:  `error parsing "dog"`,
		},
		{
			name: "form error",
			err:  &request.FormError{Err: errors.New("invalid URL escape")},
			code: http.StatusBadRequest,
			msg:  "Error parsing form data: invalid URL escape",
		},
		{
			name: "field error",
			err:  &request.FieldError{Name: "n"},
			code: http.StatusBadRequest,
			msg:  "form data has no 'n' parameter",
		},
		{
			name: "empty list",
			err:  handler.ErrEmptyList,
			code: http.StatusBadRequest,
			msg:  "Could not compute GCD for empty list",
		},
		{
			name: "cause not found",
			err:  cause.New(codes.NotFound, "gcd/not_found", "Not found"),
			code: http.StatusNotFound,
			msg:  "Not found",
		},
		{
			name: "generic error",
			err:  errors.New("database password is hunter2"),
			code: http.StatusInternalServerError,
			msg:  "An unexpected error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, handler.StatusCode(tt.err))
			assert.Equal(t, tt.msg, handler.Message(tt.err))
		})
	}
}

func TestBaseHandler_Next(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	base := handler.BaseHandler{}.WithLogger(logger)

	tests := []struct {
		name  string
		err   error
		code  int
		level string
	}{
		{"client error", handler.ErrEmptyList, http.StatusBadRequest, `"level":"WARN"`},
		{"server error", errors.New("boom"), http.StatusInternalServerError, `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/gcd", nil)

			base.Next(w, r, tt.err)

			is := assert.New(t)
			is.Equal(tt.code, w.Code)
			is.Equal("text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			is.Equal("Error: "+handler.Message(tt.err), w.Body.String())
			is.Contains(buf.String(), tt.level)
			is.Contains(buf.String(), "request failed")
		})
	}
}

func TestBaseHandler_Next_NoLogger(t *testing.T) {
	base := handler.BaseHandler{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/gcd", nil)
	base.Next(w, r, handler.ErrEmptyList)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error: Could not compute GCD for empty list", w.Body.String())
}
