package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Contains(t, cfg.InterestKeywords, "notepad++")
	assert.Len(t, cfg.InterestKeywords, len(DefaultInterestKeywords))
}

func TestLoadExplicitFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "replace list",
			content: "interest_keywords:\n  - Fortinet\n  - ' cisco '\n  - fortinet\n",
			want:    []string{"fortinet", "cisco"},
		},
		{
			name:    "empty list disables highlighting",
			content: "interest_keywords: []\n",
			want:    []string{},
		},
		{
			name:    "replace and extend",
			content: "interest_keywords: [zoom]\nextra_keywords: [Juniper, '']\n",
			want:    []string{"zoom", "juniper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.InterestKeywords)
		})
	}
}

func TestLoadExtraKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "extra_keywords: [juniper]\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, cfg.InterestKeywords, "apple")
	assert.Equal(t, "juniper", cfg.InterestKeywords[len(cfg.InterestKeywords)-1])
}

func TestLoadDefaultFileFromWorkingDir(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	writeConfig(t, tmp, "interest_keywords: [acme]\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"acme"}, cfg.InterestKeywords)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeConfig(t, t.TempDir(), "interest_keywords: {bad\n")
	_, err = Load(path)
	require.Error(t, err)
}
