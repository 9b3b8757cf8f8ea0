package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"settlement_console/internal/app"
	"settlement_console/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a, err := app.New(context.Background(), config.Config{
		Port:                      8080,
		Environment:               "test",
		IDStrategy:                "sequence",
		AssignmentStrategy:        "fixed",
		AssignmentFixedTechnician: "T002",
		SummarizerMock:            true,
	}, nil)
	require.NoError(t, err)
	return NewRouter(a)
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	w := serve(r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_ImportThenDashboard(t *testing.T) {
	r := newTestRouter(t)

	before := serve(r, http.MethodGet, "/v1/orders", "")
	require.Equal(t, http.StatusOK, before.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(before.Body.Bytes(), &orders))

	w := serve(r, http.MethodPost, "/v1/imports/order", `{"month":"2023-10","category":"Installation","text":"订单号,客户,地址\nJD001,张三,北京\nJD002,李四,"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.EqualValues(t, 2, report["imported"])
	assert.EqualValues(t, 1, report["skipped_header"])

	after := serve(r, http.MethodGet, "/v1/technicians/T002/orders", "")
	require.Equal(t, http.StatusOK, after.Code)
	assert.Contains(t, after.Body.String(), "JD002")
	assert.Contains(t, after.Body.String(), "未知地址")

	dash := serve(r, http.MethodGet, "/v1/dashboard", "")
	require.Equal(t, http.StatusOK, dash.Code)
	var d map[string]any
	require.NoError(t, json.Unmarshal(dash.Body.Bytes(), &d))
	counts := d["order_status_counts"].(map[string]any)
	assert.EqualValues(t, len(orders)+2, totalCount(counts))
}

func totalCount(m map[string]any) int {
	n := 0
	for _, v := range m {
		n += int(v.(float64))
	}
	return n
}

func TestRouter_SettlementReview(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodPost, "/v1/settlements", `{"order_id":"O1003","category":"家电","amount":"88.8"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var s map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	id := s["id"].(string)

	ok := serve(r, http.MethodPatch, "/v1/settlements/"+id+"/approve", "")
	assert.Equal(t, http.StatusOK, ok.Code)
	again := serve(r, http.MethodPatch, "/v1/settlements/"+id+"/reject", "")
	assert.Equal(t, http.StatusConflict, again.Code)
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t)
	serve(r, http.MethodPost, "/v1/imports/part", `{"month":"2023-10","category":"OriginalBattery","text":"O1001,2,150"}`)

	w := serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "console_import_batches_total"))
}
