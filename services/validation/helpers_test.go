package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DhanushPillay/MailSpectre/internal/logger"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
)

func defaultSnapshot(t *testing.T) *refdata.Snapshot {
	t.Helper()
	snapshot, err := refdata.Load(&refdata.Config{})
	require.NoError(t, err)
	return snapshot
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}
