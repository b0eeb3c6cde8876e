package httptransport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cataloghandler "supplierhub/internal/catalog/handler"
	catalogservice "supplierhub/internal/catalog/service"
	catalogstore "supplierhub/internal/catalog/store"
	"supplierhub/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := catalogstore.NewInMemory()
	catalogstore.Seed(context.Background(), store, time.Now())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(cataloghandler.New(catalogservice.New(store), logger))
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestModuleRoutesAreMounted(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/catalog/categories"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.UnmarshalResponse[cataloghandler.ListResponse](t, rr)
	require.NotEmpty(t, resp.Categories)
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(t)

	req := testutil.NewRequest(t, http.MethodGet, "/healthz")
	req.Header.Set("X-Request-ID", "req-123")
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))

	// One is minted when the caller sends none.
	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
