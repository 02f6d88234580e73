package enumtable

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger replaces the logger used for declarations and for tables built
// without their own logger. A nil logger silences the package.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pkgLogger.Store(logger)
}

func currentLogger() *zap.Logger {
	return pkgLogger.Load()
}
