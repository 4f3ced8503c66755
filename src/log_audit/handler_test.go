package logaudit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	logger_message "directory-api/pkg/utilities/logger"
	"directory-api/pkg/utilities/timeutil"
	logaudit "directory-api/src/log_audit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := setupService(t)
	require.NoError(t, service.ProcessLogMessage(logger_message.LoggerMessage{
		Level:     "info",
		Message:   "request handled",
		Timestamp: timeutil.NowUTC(),
	}))

	handler := logaudit.NewLogAuditHandler(service)
	router := gin.New()
	router.GET("/logs", handler.GetLogEntries)
	router.GET("/logs/service/:service", handler.GetLogEntriesByService)
	router.GET("/logs/level/:level", handler.GetLogEntriesByLevel)
	return router
}

func TestHandlerGetLogEntriesPagination(t *testing.T) {
	router := setupLogRouter(t)

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "Defaults", path: "/logs", code: http.StatusOK},
		{name: "Explicit page", path: "/logs?limit=10&offset=0", code: http.StatusOK},
		{name: "Limit at cap", path: "/logs?limit=1000", code: http.StatusOK},
		{name: "Limit above cap", path: "/logs?limit=1001", code: http.StatusBadRequest},
		{name: "Negative limit", path: "/logs?limit=-1", code: http.StatusBadRequest},
		{name: "Negative offset", path: "/logs?offset=-5", code: http.StatusBadRequest},
		{name: "Negative limit by level", path: "/logs/level/info?limit=-1", code: http.StatusBadRequest},
		{name: "Negative offset by service", path: "/logs/service/directory-api?offset=-1", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}
