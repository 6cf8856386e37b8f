package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/iwvelando/buyout-calculator/internal/quote"
	"github.com/iwvelando/buyout-calculator/pkg/buyout"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuote(t *testing.T) {
	m := New()
	calc := quote.NewCalculator(nil, m)

	calc.Compute(buyout.Inputs{MonthsRented: 2, Province: "ON"})
	calc.Compute(buyout.Inputs{MonthsRented: 6, Province: "ON"})
	calc.Compute(buyout.Inputs{MonthsRented: 1, Province: "QC"})
	calc.Compute(buyout.Inputs{MonthsRented: 1, Province: "XX"})
	calc.Compute(buyout.Inputs{MonthsRented: 1, Province: "<script>"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotes.WithLabelValues("ON", "100")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotes.WithLabelValues("ON", "50")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotes.WithLabelValues("QC", "100")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotes.WithLabelValues("unknown", "100")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/things/42", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `buyout_http_request_duration_seconds_count{method="GET",route="/api/things/{id}",status="418"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
