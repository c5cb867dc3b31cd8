package testlog

import (
	"testing"

	"github.com/seqproc/seqproc/internal/logging"
	"github.com/seqproc/seqproc/logs"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logs.Logf("test=%s", t.Name())
}
