package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelDesdeConfig(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	l = New(Config{Env: "production", Level: " DEBUG "})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel(), "el nivel se normaliza antes de parsear")
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	l := New(Config{Env: "production", Level: "verbose"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())

	l = New(Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
