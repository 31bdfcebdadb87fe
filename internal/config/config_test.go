package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Resolve reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{APIURLEnvVar, LegacyAPIURLEnvVar, TimeoutEnvVar, DefaultModeEnvVar} {
		t.Setenv(v, "")
	}
}

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, "buildit"), "config dir %q should end in buildit", dir)

	if runtime.GOOS == "linux" {
		assert.Equal(t, filepath.Join("/tmp/xdg", "buildit"), dir)
	}

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, DefaultAPIURL, f.API.URL)
	assert.Equal(t, "build", f.Preferences.DefaultMode)
	assert.Zero(t, f.Timeout())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	f := NewFile()
	f.API.URL = "https://buildit.example.com"
	f.API.TimeoutSeconds = 45
	f.Preferences.DefaultMode = "reverse"
	f.Preferences.CustomParts = []string{"Servo Motor SG90"}
	require.NoError(t, f.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# BuildIT client configuration"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://buildit.example.com", loaded.API.URL)
	assert.Equal(t, 45*time.Second, loaded.Timeout())
	assert.Equal(t, "reverse", loaded.Preferences.DefaultMode)
	assert.Equal(t, []string{"Servo Motor SG90"}, loaded.Preferences.CustomParts)
}

func TestLoad_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 7\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config version")
}

func TestLoad_FillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f.API)
	require.NotNil(t, f.Preferences)
}

func TestResolve_Precedence(t *testing.T) {
	file := NewFile()
	file.API.URL = "http://from-file:9000"

	tests := []struct {
		name     string
		env      map[string]string
		override Overrides
		want     string
	}{
		{
			name: "file beats default",
			want: "http://from-file:9000",
		},
		{
			name: "legacy env beats file",
			env:  map[string]string{LegacyAPIURLEnvVar: "http://vite:8000"},
			want: "http://vite:8000",
		},
		{
			name: "primary env beats legacy env",
			env: map[string]string{
				LegacyAPIURLEnvVar: "http://vite:8000",
				APIURLEnvVar:       "http://env:8000",
			},
			want: "http://env:8000",
		},
		{
			name:     "flag beats everything",
			env:      map[string]string{APIURLEnvVar: "http://env:8000"},
			override: Overrides{APIURL: "http://flag:8000/"},
			want:     "http://flag:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			s, err := Resolve(file, tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.APIURL)
		})
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Resolve(&File{Version: 1}, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", s.APIURL)
	assert.Equal(t, "build", s.Mode)
	assert.Zero(t, s.Timeout)
}

func TestResolve_Timeout(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override time.Duration
		want     time.Duration
		wantErr  bool
	}{
		{name: "plain seconds", env: "30", want: 30 * time.Second},
		{name: "duration", env: "1m30s", want: 90 * time.Second},
		{name: "flag wins", env: "30", override: 5 * time.Second, want: 5 * time.Second},
		{name: "garbage", env: "soon", wantErr: true},
		{name: "negative", env: "-4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(TimeoutEnvVar, tt.env)

			s, err := Resolve(nil, Overrides{Timeout: tt.override})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Timeout)
		})
	}
}

func TestResolve_InvalidMode(t *testing.T) {
	clearEnv(t)

	_, err := Resolve(nil, Overrides{Mode: "sideways"})
	require.Error(t, err)

	s, err := Resolve(nil, Overrides{Mode: "Reverse"})
	require.NoError(t, err)
	assert.Equal(t, "reverse", s.Mode)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(TimeoutEnvVar, "12")

	path := filepath.Join(t.TempDir(), ".env")
	content := APIURLEnvVar + "=http://dotenv:8000\n" + TimeoutEnvVar + "=99\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	// godotenv treats a present-but-empty variable as set. t.Setenv in
	// clearEnv already registered the restore.
	require.NoError(t, os.Unsetenv(APIURLEnvVar))

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))

	s, err := Resolve(nil, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:8000", s.APIURL)
	assert.Equal(t, 12*time.Second, s.Timeout)
}
