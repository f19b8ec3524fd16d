package logger

import (
	"log/slog"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPicksHandlerFromGinMode(t *testing.T) {
	previous := gin.Mode()
	defer gin.SetMode(previous)

	gin.SetMode(gin.DebugMode)
	l := New()
	_, isText := l.Handler().(*slog.TextHandler)
	assert.True(t, isText, "debug mode should use the text handler")

	gin.SetMode(gin.ReleaseMode)
	l = New()
	_, isJSON := l.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "release mode should use the JSON handler")
}

func TestSetDefaultReplacesSharedLogger(t *testing.T) {
	previous := GetDefault()
	defer SetDefault(previous)

	replacement := New()
	SetDefault(replacement)

	assert.Same(t, replacement, GetDefault())
}
