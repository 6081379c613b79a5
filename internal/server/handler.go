// Package server exposes figure exports over HTTP as file downloads.
package server

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"golang.org/x/text/language"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/drawing"
	"github.com/gogpu/sukharik/export"
)

// Options configure a Handler.
type Options struct {
	// DefaultName is the download name used when the request has none.
	DefaultName string

	// Locale selects label formatting; language.Und keeps plain decimals.
	Locale language.Tag

	// MaxCanvas limits the rasterized PNG side in pixels.
	MaxCanvas int
}

// Handler serves the figure endpoints.
type Handler struct {
	opts Options
}

// NewHandler creates a Handler.
func NewHandler(opts Options) *Handler {
	if opts.MaxCanvas <= 0 {
		opts.MaxCanvas = export.DefaultMaxSize
	}
	return &Handler{opts: opts}
}

// Router returns the routes wrapped in the logging and recovery middleware.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(Recovery)
	r.Use(RequestLogger)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/figure.{format:svg|png}", h.Figure).Methods(http.MethodGet)
	return r
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Figure handles GET /figure.svg and GET /figure.png.
//
// Query parameters (all optional): width, height, x, y, len, deg, rot,
// precision, scale (PNG only), chord, mirror, name. Numbers outside their
// range are clamped and rounded rather than rejected; values that are not
// numbers are rejected with 400.
func (h *Handler) Figure(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	doc, scale, err := h.document(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	name := q.Get("name")
	if name == "" {
		name = h.opts.DefaultName
	}

	switch mux.Vars(r)["format"] {
	case "svg":
		err = export.DownloadSVG(w, doc, name)
	case "png":
		err = export.DownloadPNG(w, doc, name,
			export.WithScale(scale),
			export.WithMaxSize(h.opts.MaxCanvas))
	}
	if err != nil {
		h.fail(w, r, err)
	}
}

// document builds the requested figure and returns it with the PNG scale.
func (h *Handler) document(q url.Values) (*drawing.Document, float64, error) {
	width, err := widthParam.read(q)
	if err != nil {
		return nil, 0, err
	}
	height, err := heightParam.read(q)
	if err != nil {
		return nil, 0, err
	}
	x, err := pointParam("x", width/2, width).read(q)
	if err != nil {
		return nil, 0, err
	}
	y, err := pointParam("y", height/2, height).read(q)
	if err != nil {
		return nil, 0, err
	}
	length, err := lengthParam(math.Min(width, height)*0.4, math.Hypot(width, height)).read(q)
	if err != nil {
		return nil, 0, err
	}
	deg, err := degParam.read(q)
	if err != nil {
		return nil, 0, err
	}
	rot, err := rotParam.read(q)
	if err != nil {
		return nil, 0, err
	}
	precision, err := precisionParam.read(q)
	if err != nil {
		return nil, 0, err
	}
	scale, err := scaleParam.read(q)
	if err != nil {
		return nil, 0, err
	}
	chord, err := boolParam(q, "chord")
	if err != nil {
		return nil, 0, err
	}
	mirror, err := boolParam(q, "mirror")
	if err != nil {
		return nil, 0, err
	}

	fig := drawing.AngleFigure{
		Vertex:    sukharik.Pt(x, y),
		Length:    length,
		Angle:     sukharik.AngleFromDeg(deg),
		Rotation:  sukharik.AngleFromDeg(rot),
		Chord:     chord,
		Mirror:    mirror,
		Precision: int(precision),
		Locale:    h.opts.Locale,
	}
	return fig.Document(width, height, drawing.WithBackground(drawing.White)), scale, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadParam):
		status = http.StatusBadRequest
	case errors.Is(err, export.ErrNoCanvas):
		status = http.StatusUnprocessableEntity
	}
	slog.Warn("figure export failed", "path", r.URL.Path, "status", status, "error", err)
	http.Error(w, err.Error(), status)
}
