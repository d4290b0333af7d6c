package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"sitekeeper"}, args...)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ".sitekeeper", c.DataDir)
	assert.Equal(t, "sitekeeper.db", c.DBFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "gemini-3-flash-preview", c.GenAIModel)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.False(t, c.HasPosition)
}

func TestLoadConfig_NoSources(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFile_JSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{
		"db_file": "field.db",
		"log_backend": "zap",
		"genai_api_key": "k1",
		"latitude": 25.61,
		"longitude": 85.14,
		"request_timeout": "45s"
	}`)
	withArgs(t, "-c", path)

	cfg := defaults()
	parseFile(cfg)

	assert.Equal(t, "field.db", cfg.DBFile)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.Equal(t, "k1", cfg.GenAIAPIKey)
	assert.True(t, cfg.HasPosition)
	assert.Equal(t, 25.61, cfg.Latitude)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ".sitekeeper", cfg.DataDir, "absent keys keep their value")
}

func TestParseFile_YAML(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
data_dir: /srv/sitekeeper
log_level: debug
request_timeout: 5000000000
latitude: 1.5
`)
	withArgs(t, "-config="+path)

	cfg := defaults()
	parseFile(cfg)

	assert.Equal(t, "/srv/sitekeeper", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.HasPosition, "a position needs both coordinates")
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))
		assert.Panics(t, func() { parseFile(defaults()) })
	})
	t.Run("bad json", func(t *testing.T) {
		withArgs(t, "-c", writeFile(t, "cfg.json", `{"db_file": 3}`))
		assert.Panics(t, func() { parseFile(defaults()) })
	})
	t.Run("bad duration", func(t *testing.T) {
		withArgs(t, "-c", writeFile(t, "cfg.yml", "request_timeout: soon\n"))
		assert.Panics(t, func() { parseFile(defaults()) })
	})
}

func TestParseEnv(t *testing.T) {
	t.Setenv("API_KEY", "gemini-key")
	t.Setenv("MAPS_API_KEY", "maps-key")
	t.Setenv("SITEKEEPER_LOG_LEVEL", "warn")
	t.Setenv("SITEKEEPER_REQUEST_TIMEOUT", "2m")
	t.Setenv("SITEKEEPER_LATITUDE", "25.6")
	t.Setenv("SITEKEEPER_LONGITUDE", "85.1")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "gemini-key", cfg.GenAIAPIKey)
	assert.Equal(t, "maps-key", cfg.MapsAPIKey)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.True(t, cfg.HasPosition)
	assert.Equal(t, 85.1, cfg.Longitude)
	assert.Equal(t, "sitekeeper.db", cfg.DBFile)
}

func TestParseEnv_Invalid(t *testing.T) {
	t.Setenv("SITEKEEPER_LATITUDE", "north")
	assert.Panics(t, func() { parseEnv(defaults()) })
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		check       func(t *testing.T, c *Config)
	}{
		{
			name: "all flags",
			args: []string{"-d", "/tmp/x.db", "-l", "debug", "-t", "7"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "/tmp/x.db", c.DBFile)
				assert.Equal(t, "debug", c.LogLevel)
				assert.Equal(t, 7*time.Second, c.RequestTimeout)
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "-l=error"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "error", c.LogLevel)
				assert.Equal(t, 30*time.Second, c.RequestTimeout)
			},
		},
		{name: "bad timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			cfg := defaults()

			if tt.expectPanic {
				assert.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"log_level": "debug", "db_file": "file.db", "maps_api_key": "from-file"}`)
	t.Setenv("SITEKEEPER_LOG_LEVEL", "warn")
	t.Setenv("MAPS_API_KEY", "from-env")
	withArgs(t, "-c", path, "-l", "error")

	cfg := LoadConfig()
	assert.Equal(t, "error", cfg.LogLevel, "flag beats env and file")
	assert.Equal(t, "from-env", cfg.MapsAPIKey, "env beats file")
	assert.Equal(t, "file.db", cfg.DBFile, "file beats default")
}

func TestDBPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	cfg := defaults()
	cfg.DataDir = dir

	p, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sitekeeper.db"), p)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
