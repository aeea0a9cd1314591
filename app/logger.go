package app

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

func InitLogger() {
	logLevel := strings.ToLower(strings.TrimSpace(Config.Logger.Level))
	log.Debug("[LOGGER] Initializing logger with level: ", logLevel)

	switch logLevel {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "", "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
		log.Warn("[LOGGER] Unknown log level ", logLevel, ", using info")
	}

	log.Info("[LOGGER] Logger initialized with level: ", log.GetLevel())
}
