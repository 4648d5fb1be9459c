package sl

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("course not found"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "course not found", attr.Value.String())
}
