package main

import (
	"fmt"
	"io"

	"github.com/rgehrsitz/netincome/internal/calculation"
	"github.com/sirupsen/logrus"
)

var logLevels = map[string]logrus.Level{
	"trace":    logrus.TraceLevel,
	"debug":    logrus.DebugLevel,
	"info":     logrus.InfoLevel,
	"warn":     logrus.WarnLevel,
	"error":    logrus.ErrorLevel,
	"critical": logrus.FatalLevel,
	"off":      logrus.PanicLevel,
}

var log = logrus.WithField("module", "netincome")

func setupLogging(out io.Writer, level string) error {
	l, ok := logLevels[level]
	if !ok {
		return fmt.Errorf("log level must be one of trace, debug, info, warn, error, critical, off; got %q", level)
	}
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.0000",
	})
	logrus.SetLevel(l)
	return nil
}

// logrusLogger implements calculation.Logger on top of a logrus entry
type logrusLogger struct {
	entry *logrus.Entry
}

func (l logrusLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l logrusLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l logrusLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// newEngine returns a calculation engine that logs through logrus when debug
// output is enabled
func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		engine.SetLogger(logrusLogger{entry: logrus.WithField("module", "calculation")})
	}
	return engine
}
