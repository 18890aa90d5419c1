package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/person-api/internal/middleware"
	"github.com/questx-lab/person-api/pkg/logger"
	"github.com/questx-lab/person-api/pkg/testutil"
	"github.com/questx-lab/person-api/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	cfg := xcontext.Configs(ctx)
	s := &srv{
		ctx:     ctx,
		configs: &cfg,
		logger:  logger.NewNopLogger(),
		db:      xcontext.DB(ctx),
	}
	s.loadRepos()
	s.loadDomains()
	require.NoError(t, s.loadRouter())
	h := middleware.AllowCors(cfg.ApiServer.AllowedOrigins, s.router.Handler())

	req := httptest.NewRequest(http.MethodGet, "/api/persons?pageSize=2", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "3", w.Header().Get("X-Total-Count"))
	require.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "http_requests_total")
	require.Contains(t, w.Body.String(), `route="/api/persons"`)
	require.Contains(t, w.Body.String(), `go_sql_open_connections{db_name="persons"}`)
}
