package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.NotNil(t, Mono.Get())
	assert.NotNil(t, MonoSmall.Get())
}

func TestLoadFont_BadData(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestGet_Missing(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
