// Package logging configures the process-wide logger from the loaded
// configuration. Call Setup once at startup.
package logging

import (
	log "github.com/sirupsen/logrus"

	"github.com/mvp-tools/dashboard_backend/internal/config"
)

// Level maps a configuration log level onto a logrus level. CRITICAL maps
// to Fatal, the closest severity logrus offers.
func Level(level config.LogLevel) log.Level {
	switch level {
	case config.LevelDebug:
		return log.DebugLevel
	case config.LevelInfo:
		return log.InfoLevel
	case config.LevelWarning:
		return log.WarnLevel
	case config.LevelError:
		return log.ErrorLevel
	case config.LevelCritical:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Setup applies the configured level and formatter to the standard logger.
func Setup(cfg *config.Config) {
	log.SetLevel(Level(cfg.LogLevel))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	log.WithFields(log.Fields{
		"level": cfg.LogLevel,
		"env":   cfg.AppEnv,
		"debug": cfg.Debug,
	}).Info("Logging configured")
}
