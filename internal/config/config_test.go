package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{"api_key":"key-123","port":9090,"max_videos":3,"language":"en"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3, cfg.MaxVideos)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": "not a number"}`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Defaults(), false},
		{"zero value", Config{}, false},
		{"port too large", Config{Port: 70000}, true},
		{"negative port", Config{Port: -1}, true},
		{"negative max videos", Config{MaxVideos: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, 5, merged.MaxVideos)
	assert.Equal(t, "en", merged.Language)
}

func TestMergeWithDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := Config{APIKey: "mine", Port: 1234, MaxVideos: 2, Language: "es"}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, cfg, merged)
}
