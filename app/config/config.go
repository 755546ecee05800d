package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StaticDir     string
	CatalogPath   string
	Import        ImportConfig
	Session       SessionConfig
	Log           LogConfig
	CORSOrigins   string
	NoticeDismiss time.Duration
}

// ImportConfig locates the attendance/marks export.
type ImportConfig struct {
	Source  string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL           time.Duration
	SweepSchedule string
}

type LogConfig struct {
	Level string
	Dir   string
}

// LoadEnv reads a .env file when one exists, then builds the configuration from the
// environment. Problems with individual values fall back to defaults and are
// reported through the returned warnings.
func LoadEnv(files ...string) (*Config, []string) {
	var warnings []string
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		warnings = append(warnings, fmt.Sprintf("failed to load .env: %v", err))
	}

	port := GetEnv("PORT", "8080")
	cfg := &Config{
		Port:        port,
		StaticDir:   GetEnv("STATIC_DIR", "./static"),
		CatalogPath: GetEnv("CATALOG_PATH"),
		Import: ImportConfig{
			Source: GetEnv("IMPORT_SOURCE", fmt.Sprintf("http://127.0.0.1:%s/static/attendance.csv", port)),
		},
		Session: SessionConfig{
			SweepSchedule: GetEnv("SESSION_SWEEP_SCHEDULE", "@every 10m"),
		},
		Log: LogConfig{
			Level: GetEnv("LOG_LEVEL", "info"),
			Dir:   GetEnv("LOG_DIR"),
		},
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
	}

	var w string
	cfg.Import.Timeout, w = durationEnv("IMPORT_TIMEOUT", 10*time.Second)
	warnings = appendWarning(warnings, w)
	cfg.Session.TTL, w = durationEnv("SESSION_TTL", 2*time.Hour)
	warnings = appendWarning(warnings, w)
	cfg.NoticeDismiss, w = durationEnv("NOTICE_DISMISS", 3*time.Second)
	warnings = appendWarning(warnings, w)

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		warnings = append(warnings, fmt.Sprintf("PORT %q is not a number, using 8080", cfg.Port))
		cfg.Port = "8080"
	}

	return cfg, warnings
}

// Report logs the effective configuration and any warnings.
func (c *Config) Report(logger log.Logger, warnings []string) {
	for _, w := range warnings {
		level.Warn(logger).Log("msg", w)
	}
	level.Info(logger).Log(
		"msg", "configuration loaded",
		"port", c.Port,
		"catalog", orDefault(c.CatalogPath, "built-in"),
		"import_source", c.Import.Source,
		"session_ttl", c.Session.TTL,
		"sweep", c.Session.SweepSchedule,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func durationEnv(key string, def time.Duration) (time.Duration, string) {
	v := GetEnv(key)
	if v == "" {
		return def, ""
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def, fmt.Sprintf("%s %q is not a valid duration, using %s", key, v, def)
	}
	return d, ""
}

func appendWarning(warnings []string, w string) []string {
	if w == "" {
		return warnings
	}
	return append(warnings, w)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
