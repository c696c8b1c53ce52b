package utils

import (
	"os"
	"strings"

	chlog "github.com/charmbracelet/log"
)

// Logger is the application-wide structured logger.
var Logger *chlog.Logger

const (
	debugLevel = "debug"
	infoLevel  = "info"
	warnLevel  = "warn"
	errorLevel = "error"
)

// InitLogger initializes the global logger with level from MANED_COURIER_LOG_LEVEL.
// Valid levels: debug, info, warn, error.
//
// The logger writes to stderr: stdout is reserved for record and delivery
// output so the tool can be piped.
func InitLogger() {
	if Logger != nil {
		return
	}
	l := chlog.New(os.Stderr)
	l.SetTimeFormat("2006-01-02 15:04:05.000")
	l.SetReportTimestamp(true)
	levelStr := strings.ToLower(strings.TrimSpace(os.Getenv("MANED_COURIER_LOG_LEVEL")))
	switch levelStr {
	case debugLevel:
		l.SetLevel(chlog.DebugLevel)
	case warnLevel:
		l.SetLevel(chlog.WarnLevel)
	case errorLevel:
		l.SetLevel(chlog.ErrorLevel)
	default:
		l.SetLevel(chlog.InfoLevel)
	}
	Logger = l
}

// SetLogLevel allows changing level at runtime.
func SetLogLevel(level string) {
	if Logger == nil {
		InitLogger()
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case debugLevel:
		Logger.SetLevel(chlog.DebugLevel)
	case infoLevel:
		Logger.SetLevel(chlog.InfoLevel)
	case warnLevel:
		Logger.SetLevel(chlog.WarnLevel)
	case errorLevel:
		Logger.SetLevel(chlog.ErrorLevel)
	}
}
