package cmd

import (
	"path/filepath"
	"testing"

	"carta/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("CARTA_LANG", "")
	t.Setenv("CARTA_SEED", "")
	t.Setenv("CARTA_LOG", "")

	config, err := Parse(nil, "v1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", config.Version)
	assert.Equal(t, model.LangEN, config.Lang)
	assert.Equal(t, "all", config.Category)
	assert.Empty(t, config.SeedPath)
	assert.Equal(t, "carta.log", filepath.Base(config.LogPath))
	assert.False(t, config.Export)
}

func TestParseEnvAndFlags(t *testing.T) {
	t.Setenv("CARTA_LANG", "de")
	t.Setenv("CARTA_SEED", "/tmp/menu.json")
	t.Setenv("CARTA_LOG", "/tmp/carta-test.log")

	config, err := Parse(nil, "dev")
	require.NoError(t, err)
	assert.Equal(t, model.LangDE, config.Lang)
	assert.Equal(t, "/tmp/menu.json", config.SeedPath)
	assert.Equal(t, "/tmp/carta-test.log", config.LogPath)

	config, err = Parse([]string{"-lang", "fr", "-export", "-category", "salads", "-query", "tuna"}, "dev")
	require.NoError(t, err)
	assert.Equal(t, model.LangFR, config.Lang)
	assert.True(t, config.Export)
	assert.Equal(t, "salads", config.Category)
	assert.Equal(t, "tuna", config.Query)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("CARTA_LANG", "")

	_, err := Parse([]string{"-lang", "pt"}, "dev")
	assert.Error(t, err)

	_, err = Parse([]string{"-category", "soups"}, "dev")
	assert.Error(t, err)
}
