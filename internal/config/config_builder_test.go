package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validStorage(t *testing.T) Storage {
	t.Helper()
	dir := t.TempDir()
	return Storage{
		DB:    DB{DSN: filepath.Join(dir, "vault.db")},
		Files: Files{DocumentsDir: filepath.Join(dir, "documents")},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// configs yields a valid config populated with defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultCipher, cfg.App.Cipher)
	assert.Equal(t, DefaultKeySalt, cfg.App.KeySalt)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, uint32(DefaultArgonTime), cfg.App.ArgonTime)
	assert.Equal(t, uint32(DefaultArgonMemory), cfg.App.ArgonMemory)
	assert.Equal(t, uint8(DefaultArgonThreads), cfg.App.ArgonThreads)
	assert.Contains(t, cfg.Storage.DB.DSN, defaultDBFile)
	assert.Contains(t, cfg.Storage.Files.DocumentsDir, defaultDocumentsDir)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverrides verifies merge order: later non-zero
// fields win, zero fields keep earlier values.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	storage := validStorage(t)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Cipher: "ctr", LogLevel: "debug"}, Storage: storage},
		&StructuredConfig{App: App{Cipher: "gcm"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "gcm", cfg.App.Cipher)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, storage, cfg.Storage)
}

// TestBuild_InvalidCipher verifies validation of the cipher name.
func TestBuild_InvalidCipher(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Cipher: "rot13"}, Storage: validStorage(t)})

	cfg, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.NotNil(t, cfg)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// TestWithJSON_NoPath verifies that nothing is appended without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_PrependsFileConfig verifies that the JSON config is placed
// first so env and flag values override it.
func TestWithJSON_PrependsFileConfig(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Cipher = "gcm"
	payload.App.LogLevel = "error"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path, App: App{LogLevel: "debug"}})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "gcm", b.configs[0].App.Cipher)

	b.configs[1].Storage = validStorage(t)
	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "gcm", cfg.App.Cipher)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

// TestWithJSON_SetsError_WhenFileMissing verifies that an unreadable JSON
// path sets b.err.
func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	storage := validStorage(t)
	setEnvVars(t, map[string]string{
		"APP_CIPHER":                  "gcm",
		"STORAGE_DB_DSN":              storage.DB.DSN,
		"STORAGE_FILES_DOCUMENTS_DIR": storage.Files.DocumentsDir,
	})

	cfg, err := GetStructuredConfig(&StructuredConfig{App: App{Cipher: "ctr"}})
	require.NoError(t, err)

	assert.Equal(t, "ctr", cfg.App.Cipher)
	assert.Equal(t, storage.DB.DSN, cfg.Storage.DB.DSN)
	assert.Equal(t, storage.Files.DocumentsDir, cfg.Storage.Files.DocumentsDir)
}
