package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadFile applies overrides from an explicit config file, which must exist.
func loadFile(cfg *Config, path string) error {
	return load(cfg, viper.New(), path, true)
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/photos", "/media/photos"},
		{"single trailing slash", "/media/photos/", "/media/photos"},
		{"multiple trailing slashes", "/media/photos///", "/media/photos"},
		{"root path", "/", "/"},
		{"relative path", "photos", "photos"},
		{"relative with slash", "photos/", "photos"},
		{"current dir", ".", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RequiresDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = ""
	assert.Error(t, cfg.Validate())
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".", cfg.Dir)
	assert.True(t, cfg.DirDefaulted)
	assert.True(t, cfg.Confirm)
	assert.Equal(t, "ffprobe", cfg.FFprobe)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantDir     string
		wantDefault bool
		wantErr     bool
		wantHelp    bool
	}{
		{"no args uses current dir", nil, ".", true, false, false},
		{"one positional", []string{"/media/photos/"}, "/media/photos", false, false, false},
		{"two positionals", []string{"a", "b"}, "", false, true, false},
		{"short help", []string{"-h"}, "", false, true, true},
		{"long help", []string{"--help"}, "", false, true, true},
		{"unknown flag", []string{"--dry-run"}, "", false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := DefaultConfig()
			err := ParseFlags(&cfg, tt.args, &out)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantHelp, errors.Is(err, ErrHelp))
				if tt.wantHelp {
					assert.Contains(t, out.String(), "Usage:")
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, cfg.Dir)
			assert.Equal(t, tt.wantDefault, cfg.DirDefaulted)
		})
	}
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode(" Always ")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, m)

	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
color: never
log_file: /tmp/chronoprefix.log
verbose: true
confirm: false
ffprobe: ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, loadFile(&cfg, path))

	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, "/tmp/chronoprefix.log", cfg.LogFile)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Confirm)
	assert.Equal(t, "", cfg.FFprobe)
	assert.Equal(t, ".", cfg.Dir, "file must not touch the target directory")
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, loadFile(&cfg, path))

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Confirm)
	assert.Equal(t, "ffprobe", cfg.FFprobe)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, loadFile(&cfg, filepath.Join(t.TempDir(), "nope.yaml")))
	})

	t.Run("invalid color", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0o644))
		cfg := DefaultConfig()
		assert.Error(t, loadFile(&cfg, path))
	})
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(EnvPrefix+"_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvPrefix+"_CONFIRM", "false")
	t.Setenv(EnvPrefix+"_COLOR", "always")
	t.Setenv(EnvPrefix+"_FFPROBE", "/opt/ffmpeg/bin/ffprobe")

	cfg := DefaultConfig()
	require.NoError(t, Load(&cfg))

	assert.False(t, cfg.Confirm)
	assert.Equal(t, ColorAlways, cfg.ColorMode)
	assert.Equal(t, "/opt/ffmpeg/bin/ffprobe", cfg.FFprobe)
}

func TestLoad_ExplicitConfigEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_file: run.log\n"), 0o644))
	t.Setenv(EnvPrefix+"_CONFIG", path)

	cfg := DefaultConfig()
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "run.log", cfg.LogFile)
}
