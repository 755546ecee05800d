package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New creates a logfmt logger writing to stdout, and also to a timestamped file
// under dir when dir is set. Records below minLevel are dropped.
func New(prefix, dir, minLevel string) (gokitlog.Logger, error) {
	var w io.Writer = os.Stdout
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		logFile := filepath.Join(dir, fmt.Sprintf("%s_%s.log", prefix, timestamp))
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, file)
	}
	return NewWithWriter(w, minLevel), nil
}

// NewWithWriter builds the logger on an arbitrary writer.
func NewWithWriter(w io.Writer, minLevel string) gokitlog.Logger {
	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelOption(minLevel))
	return gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)
}

func levelOption(name string) level.Option {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// TimeFunction runs fn and logs how long it took and whether it failed.
func TimeFunction(logger gokitlog.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		level.Warn(logger).Log("msg", fmt.Sprintf("%s failed", name), "err", err, "took", elapsed)
	} else {
		level.Debug(logger).Log("msg", fmt.Sprintf("%s done", name), "took", elapsed)
	}
	return err
}
