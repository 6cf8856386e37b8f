package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/buyout-calculator/internal/metrics"
	"github.com/iwvelando/buyout-calculator/internal/quote"
	"github.com/iwvelando/buyout-calculator/pkg/constants"
	"github.com/iwvelando/buyout-calculator/pkg/export"
	"github.com/iwvelando/buyout-calculator/pkg/input"
	"github.com/iwvelando/buyout-calculator/pkg/output"
	"github.com/iwvelando/buyout-calculator/pkg/tax"
	"github.com/iwvelando/buyout-calculator/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	calculator     *quote.Calculator
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and buyout API.
// cfg may be nil, in which case defaults apply. When m is nil no metrics are
// recorded and /metrics is not mounted.
func NewHandler(logger *zap.Logger, cfg *Config, version string, m *metrics.Metrics) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	maxRequestSize := cfg.RequestSizeBytes()
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	var observer quote.Observer
	if m != nil {
		observer = m
	}

	h := &handler{
		logger:         logger,
		calculator:     quote.NewCalculator(logger, observer),
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{"Content-Disposition"},
			MaxAge:         300,
		}))
	}
	if m != nil {
		r.Use(m.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/provinces", h.handleProvinces)
		r.Post("/buyout", h.handleBuyout)
		r.Post("/buyout/export", h.handleExport)
		r.Get("/version", h.handleVersion)
	})

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r
}

type provinceResponse struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Rate  float64 `json:"rate"`
	Label string  `json:"label"`
}

type buyoutResponse struct {
	quote.Quote
	Display  quote.Display `json:"display"`
	Warnings []string      `json:"warnings,omitempty"`
	Duration string        `json:"duration"`
}

func (h *handler) handleProvinces(w http.ResponseWriter, r *http.Request) {
	provinces := tax.Provinces()
	response := make([]provinceResponse, 0, len(provinces))
	for _, p := range provinces {
		response = append(response, provinceResponse{
			Code:  p.Code,
			Name:  p.Name,
			Rate:  p.Rate,
			Label: tax.Label(p.Code),
		})
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleBuyout(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBuyout"
	start := time.Now()

	raw, ok := h.decodeRaw(w, r, op)
	if !ok {
		return
	}

	q := h.calculator.Compute(raw.Inputs())
	elapsed := time.Since(start)

	h.logger.Info("buyout computed",
		zap.String("op", op),
		zap.String("reference", q.Reference()),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, buyoutResponse{
		Quote:    q,
		Display:  q.Display(),
		Warnings: validation.ValidateInputs(raw),
		Duration: elapsed.String(),
	})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = constants.ExportFormatPDF
	}
	if err := validation.ValidateExportFormat(format); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	raw, ok := h.decodeRaw(w, r, op)
	if !ok {
		return
	}
	q := h.calculator.Compute(raw.Inputs())

	var buf bytes.Buffer
	var contentType string
	var err error
	switch format {
	case constants.ExportFormatPDF:
		contentType = "application/pdf"
		err = export.PDF(&buf, q, export.DefaultPDFOptions())
	case constants.ExportFormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = export.XLSX(&buf, q, export.DefaultExcelOptions())
	case constants.ExportFormatCSV:
		contentType = "text/csv; charset=utf-8"
		err = output.CsvFormat(&buf, q)
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export quote: %v", err), op)
		return
	}

	h.logger.Info("buyout exported",
		zap.String("op", op),
		zap.String("reference", q.Reference()),
		zap.String("format", format),
		zap.Int("bytes", buf.Len()),
	)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "buyout-"+q.Reference()+"."+format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write export",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

// decodeRaw reads a JSON object of form values. Values may be strings, numbers
// or null; anything else is treated as empty so the calculation fails soft.
func (h *handler) decodeRaw(w http.ResponseWriter, r *http.Request, op string) (input.Raw, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return input.Raw{}, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode inputs: %v", err), op)
		return input.Raw{}, false
	}

	return input.Raw{
		PurchasePrice:  coerceString(payload["purchasePrice"]),
		MonthlyPayment: coerceString(payload["monthlyPayment"]),
		MonthsRented:   coerceString(payload["monthsRented"]),
		Deposit:        coerceString(payload["deposit"]),
		Province:       coerceString(payload["province"]),
	}, true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("buyout request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes payload before any header is sent. A payload that cannot
// be encoded, e.g. an amount that overflowed to infinity, is answered with a
// 500 and a JSON error body.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(map[string]string{
			"error": fmt.Sprintf("failed to encode response: %v", err),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}
