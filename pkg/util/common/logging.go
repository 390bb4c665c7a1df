// Logging helpers shared by commands.
package common

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts the textual level name into the zap level. Unknown names fall back to INFO.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zap.DebugLevel
	case "INFO":
		return zap.InfoLevel
	case "ERROR":
		return zap.ErrorLevel
	case "WARN":
		return zap.WarnLevel
	case "FATAL":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// SetupLogger creates the development console logger writing to STDERR and replaces zap globals with it.
func SetupLogger(level string) (*zap.Logger, *zap.SugaredLogger) {
	return setupLogger(level, zapcore.Lock(os.Stderr))
}

func setupLogger(level string, ws zapcore.WriteSyncer) (*zap.Logger, *zap.SugaredLogger) {
	al := zap.NewAtomicLevelAt(ParseLevel(level))
	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), ws, al)
	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	return logger, logger.Sugar()
}

// TimeTrack logs the time elapsed since start, call it like this
// defer TimeTrack(time.Now(), "evaluation")
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	zap.S().Debugf("%s took %s", name, elapsed)
}
