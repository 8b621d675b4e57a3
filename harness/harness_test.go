package harness

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	logger.New("NOOP")
	t.Cleanup(logger.OnExit)
	return logger.Sugar.WithServiceName(t.Name())
}
