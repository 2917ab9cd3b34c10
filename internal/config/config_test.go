package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOALGEN_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "gemini", cfg.LLM.Provider)
	require.Equal(t, "GEMINI_API_KEY", cfg.LLM.APIKeyEnv)
	require.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	require.Equal(t, "Bahasa Indonesia", cfg.UI.Language)
	require.NotEmpty(t, cfg.Export.Dir)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SOALGEN_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SOALGEN_LLM_MODEL", "gemini-2.5-pro")
	t.Setenv("SOALGEN_UI_LANGUAGE", "Bahasa Inggris")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	require.Equal(t, "Bahasa Inggris", cfg.UI.Language)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SOALGEN_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.LLM.Model = "gemini-2.5-pro"
	cfg.Export.Dir = filepath.Join(t.TempDir(), "out")
	require.NoError(t, Save(cfg))

	_, err = os.Stat(path)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-pro", got.LLM.Model)
	require.Equal(t, cfg.Export.Dir, got.Export.Dir)
}
