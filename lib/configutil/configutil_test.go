package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl    string `json:"base_url"`
	OutputDir  string `json:"output_dir"`
	DelayMinMs int    `json:"delay_min_ms"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		// comments are fine here
		base_url: "https://smartjob.az",
		output_dir: "scraped_data",
		delay_min_ms: 1000,
	}`), 0644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		output_dir: "/tmp/override",
	}`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://smartjob.az", cfg.BaseUrl)
	require.Equal(t, "/tmp/override", cfg.OutputDir)
	require.Equal(t, 1000, cfg.DelayMinMs)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
