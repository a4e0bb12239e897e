package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/alextanhongpin/gcd/http/request"
	"github.com/alextanhongpin/gcd/metrics"
	"github.com/alextanhongpin/gcd/types/number"
)

// FieldName is the form field holding the numbers.
const FieldName = "n"

// ErrEmptyList is returned when the form holds no non-empty number.
var ErrEmptyList = cause.New(codes.BadRequest, "gcd/empty_list", "Could not compute GCD for empty list")

// Computation outcomes passed to Recorder.
const (
	OutcomeOK          = metrics.OutcomeOK
	OutcomeInvalidForm = metrics.OutcomeInvalidForm
	OutcomeParseError  = metrics.OutcomeParseError
	OutcomeEmptyList   = metrics.OutcomeEmptyList
)

// Recorder observes every computation attempt.
type Recorder interface {
	ObserveComputation(outcome string, numbers int)
}

// GCD serves the calculator form and computes the greatest common divisor
// of the submitted numbers.
type GCD struct {
	BaseHandler
	recorder Recorder
	tracer   trace.Tracer
}

// NewGCD returns the controller. The recorder may be nil.
func NewGCD(logger *slog.Logger, recorder Recorder) *GCD {
	return &GCD{
		BaseHandler: BaseHandler{}.WithLogger(logger),
		recorder:    recorder,
		tracer:      otel.Tracer("github.com/alextanhongpin/gcd/http/handler"),
	}
}

// Register installs the form page on GET / and the computation on POST /gcd.
// Any other method or path is answered with 404 Not Found.
func (h *GCD) Register(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", h.Form)
	mux.HandleFunc("/gcd", h.Compute)
}

// Form writes the calculator page.
func (h *GCD) Form(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	h.HTML(w, formPage, http.StatusOK)
}

// Compute decodes every "n" value of the form body, drops the empty ones and
// responds with their greatest common divisor.
func (h *GCD) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	ctx, span := h.tracer.Start(r.Context(), "gcd.compute")
	defer span.End()

	r = r.WithContext(ctx)

	values, err := request.FormValues(r, FieldName)
	if err != nil {
		h.fail(w, r, span, OutcomeInvalidForm, 0, err)
		return
	}

	tokens := values.NonEmpty().Strings()
	ns, err := number.ParseUint64s(tokens)
	if err != nil {
		h.fail(w, r, span, OutcomeParseError, len(tokens), err)
		return
	}

	g, ok := number.GCDList(ns...)
	if !ok {
		h.fail(w, r, span, OutcomeEmptyList, 0, ErrEmptyList)
		return
	}

	span.SetAttributes(
		attribute.Int("gcd.numbers", len(ns)),
		attribute.String("gcd.result", fmt.Sprint(g)),
	)
	h.observe(OutcomeOK, len(ns))

	h.Text(w, fmt.Sprintf("The greatest common divisor of the numbers %s is %d\n", number.FormatList(ns), g), http.StatusOK)
}

func (h *GCD) fail(w http.ResponseWriter, r *http.Request, span trace.Span, outcome string, n int, err error) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, outcome)
	h.observe(outcome, n)
	h.Next(w, r, err)
}

func (h *GCD) observe(outcome string, n int) {
	if h.recorder != nil {
		h.recorder.ObserveComputation(outcome, n)
	}
}

const formPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>GCD Calculator</title>
</head>
<body>
  <form action="/gcd" method="post">
    <input type="text" name="n" />
    <input type="text" name="n" />
    <button type="submit">Compute GCD</button>
  </form>
</body>
</html>
`
