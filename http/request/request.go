// Package request extracts values from the request body.
package request

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyForm is wrapped by the *FormError of a body holding no form field.
var ErrEmptyForm = errors.New("empty form body")

// FormError reports a body that could not be decoded as a form.
type FormError struct {
	Err error
}

func (e *FormError) Error() string {
	return fmt.Sprintf("Error parsing form data: %s", e.Err)
}

func (e *FormError) Unwrap() error {
	return e.Err
}

// FieldError reports a decoded form without the named field.
type FieldError struct {
	Name string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("form data has no '%s' parameter", e.Name)
}

// FormValues returns every value of the named field in a POST, PUT or PATCH
// body, in submission order. Query string values are ignored.
//
// A body that fails to decode, or decodes to no field at all, returns a
// *FormError. A body without the named field returns a *FieldError.
//
// Example:
//
//	// Body: n=2310&n=1001&n=
//	vs, err := request.FormValues(r, "n")
//	vs.NonEmpty().Strings() // ["2310", "1001"]
func FormValues(r *http.Request, name string) (Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, &FormError{Err: err}
	}
	if len(r.PostForm) == 0 {
		return nil, &FormError{Err: ErrEmptyForm}
	}

	vs, ok := r.PostForm[name]
	if !ok {
		return nil, &FieldError{Name: name}
	}

	res := make(Values, len(vs))
	for i, v := range vs {
		res[i] = Value(v)
	}

	return res, nil
}
