// Package handler provides the HTTP front-end of the GCD calculator: a base
// controller that renders text responses and errors, and the GCD controller
// serving the form page and the computation endpoint.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"

	"github.com/alextanhongpin/gcd/http/request"
	"github.com/alextanhongpin/gcd/http/response"
	"github.com/alextanhongpin/gcd/types/number"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// BaseHandler provides the response helpers and the error handling shared by
// the controllers.
//
// Example usage:
//
//	type Controller struct {
//		handler.BaseHandler
//	}
//
//	func (c *Controller) Show(w http.ResponseWriter, r *http.Request) {
//		if err := validate(r); err != nil {
//			c.Next(w, r, err)
//			return
//		}
//
//		c.Text(w, "ok", http.StatusOK)
//	}
type BaseHandler struct {
	logger *slog.Logger
}

// WithLogger returns a new BaseHandler with the provided logger.
func (h BaseHandler) WithLogger(logger *slog.Logger) BaseHandler {
	h.logger = logger
	return h
}

func (h BaseHandler) Logger() *slog.Logger {
	return h.logger
}

func (h BaseHandler) Text(w http.ResponseWriter, text string, code int) {
	response.Text(w, text, code)
}

func (h BaseHandler) HTML(w http.ResponseWriter, html string, code int) {
	response.HTML(w, html, code)
}

// Next logs err and writes it as a plain text "Error: <message>" response
// with the status returned by StatusCode.
//
// Client errors are logged as warnings, everything else as errors. The
// logged attributes never change the response body.
func (h BaseHandler) Next(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)

	if h.logger != nil {
		level := slog.LevelWarn
		if code >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		h.logger.LogAttrs(r.Context(), level, "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("pattern", r.Pattern),
			slog.Int("code", code),
			slog.String("err", err.Error()),
		)
	}

	h.Text(w, "Error: "+Message(err), code)
}

// StatusCode maps err to an HTTP status code.
//
// Supports:
// - Parse and form errors (400 Bad Request)
// - Cause errors with specific codes
// - Generic errors (500 Internal Server Error)
func StatusCode(err error) int {
	code, _ := classify(err)
	return code
}

// Message returns the text shown to the client for err. Server errors are
// replaced by a generic message so internal details do not leak.
func Message(err error) string {
	_, msg := classify(err)
	return msg
}

func classify(err error) (int, string) {
	var (
		pe *number.ParseError
		fe *request.FormError
		de *request.FieldError
		c  *cause.Error
	)

	switch {
	case errors.As(err, &pe):
		return http.StatusBadRequest, pe.Error()
	case errors.As(err, &fe):
		return http.StatusBadRequest, fe.Error()
	case errors.As(err, &de):
		return http.StatusBadRequest, de.Error()
	case errors.As(err, &c):
		code := codes.HTTP(c.Code)
		if code >= http.StatusInternalServerError {
			return code, internalErrorMessage
		}

		return code, c.Message
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}
