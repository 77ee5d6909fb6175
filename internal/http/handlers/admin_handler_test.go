// README: Admin config and analytics endpoint tests.
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftship/internal/modules/distance"
)

func TestGetPricingConfig(t *testing.T) {
	r, _ := buildTestRouter(t, &stubDistances{result: distance.Result{Miles: 10}})

	w := doRequest(r, http.MethodGet, "/api/admin/pricing-config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, 75.0, cfg["baseFee"])
	assert.Equal(t, 0.085, cfg["taxRate"])
}

func TestUpdatePricingConfig(t *testing.T) {
	r, _ := buildTestRouter(t, &stubDistances{result: distance.Result{Miles: 10}})

	w := doRequest(r, http.MethodPut, "/api/admin/pricing-config", map[string]any{
		"baseFee": 90,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, 90.0, cfg["baseFee"])
	// untouched keys survive the shallow merge
	assert.Equal(t, 0.085, cfg["taxRate"])
}

func TestUpdatePricingConfig_Invalid(t *testing.T) {
	r, _ := buildTestRouter(t, &stubDistances{result: distance.Result{Miles: 10}})

	w := doRequest(r, http.MethodPut, "/api/admin/pricing-config", map[string]any{
		"taxRate": 1.5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// rejected patch leaves the old config active
	w = doRequest(r, http.MethodGet, "/api/admin/pricing-config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, 0.085, cfg["taxRate"])
}

func TestAnalyticsStats(t *testing.T) {
	r, _ := buildTestRouter(t, &stubDistances{result: distance.Result{Miles: 15, Minutes: 22}})

	// no quotes yet
	w := doRequest(r, http.MethodGet, "/api/analytics/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 0.0, stats["count"])

	w = doRequest(r, http.MethodPost, "/api/quotes", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api/analytics/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1.0, stats["count"])
	// 15 mi at default rates: 75 base * 1.1 corporateEvent * 1.085 tax = 89.51
	assert.Equal(t, 89.51, stats["averageTotal"])
	assert.Equal(t, 15.0, stats["averageMiles"])

	w = doRequest(r, http.MethodGet, "/api/analytics/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recent map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	quotes, ok := recent["quotes"].([]any)
	require.True(t, ok)
	assert.Len(t, quotes, 1)
}
