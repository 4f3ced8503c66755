package logaudit_test

import (
	"testing"

	logger_message "directory-api/pkg/utilities/logger"
	"directory-api/pkg/utilities/timeutil"
	"directory-api/src/database"
	logaudit "directory-api/src/log_audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) logaudit.LogAuditService {
	t.Helper()
	db := database.SetupTestDB(t)
	return logaudit.NewLogAuditService(logaudit.NewLogAuditRepositoryWithDB(db))
}

func TestProcessLogMessage(t *testing.T) {
	service := setupService(t)

	msg := logger_message.LoggerMessage{
		Level:     "error",
		Message:   "something broke",
		Timestamp: timeutil.NowUTC(),
	}
	require.NoError(t, service.ProcessLogMessage(msg))

	entries, err := service.GetLogEntries(50, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Level)
	assert.Equal(t, "something broke", entries[0].Message)
	assert.Equal(t, "directory-api", entries[0].Service)
}

func TestGetLogEntriesByLevel(t *testing.T) {
	service := setupService(t)

	for _, level := range []string{"info", "error", "info"} {
		require.NoError(t, service.ProcessLogMessage(logger_message.LoggerMessage{
			Level:     level,
			Message:   "msg",
			Timestamp: timeutil.NowUTC(),
		}))
	}

	infos, err := service.GetLogEntriesByLevel("info", 50, 0)
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	errors, err := service.GetLogEntriesByLevel("error", 50, 0)
	require.NoError(t, err)
	assert.Len(t, errors, 1)
}

func TestGetLogEntriesPagination(t *testing.T) {
	service := setupService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, service.ProcessLogMessage(logger_message.LoggerMessage{
			Level:     "info",
			Message:   "msg",
			Timestamp: timeutil.NowUTC(),
		}))
	}

	page, err := service.GetLogEntries(2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := service.GetLogEntries(50, 4)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
