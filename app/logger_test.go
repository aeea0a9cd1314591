package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	defer func() {
		Config.Logger.Level = ""
		log.SetLevel(log.InfoLevel)
	}()

	t.Run("Error Level", func(t *testing.T) {
		Config.Logger.Level = "error"
		InitLogger()
		assert.Equal(t, log.ErrorLevel, log.GetLevel())
	})

	t.Run("Debug Level With Whitespace", func(t *testing.T) {
		Config.Logger.Level = " Debug "
		InitLogger()
		assert.Equal(t, log.DebugLevel, log.GetLevel())
	})

	t.Run("Empty Defaults To Info", func(t *testing.T) {
		Config.Logger.Level = ""
		InitLogger()
		assert.Equal(t, log.InfoLevel, log.GetLevel())
	})

	t.Run("Unknown Defaults To Info", func(t *testing.T) {
		Config.Logger.Level = "verbose"
		InitLogger()
		assert.Equal(t, log.InfoLevel, log.GetLevel())
	})
}
