package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	log, _ := test.NewNullLogger()

	cfg, err := LoadConfig(log)
	require.NoError(t, err)
	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 720, cfg.JWT.ExpiryMinutes)
}

func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	file := filepath.Join(dir, "crease.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[app]
port = "9000"
log_level = "debug"

[db]
driver = "sqlite"
path = "from-file.db"

[jwt]
expiry_minutes = 30
`), 0644))
	t.Setenv("CONFIG_FILE", file)
	t.Setenv("DB_PATH", "from-env.db")
	log, _ := test.NewNullLogger()

	cfg, err := LoadConfig(log)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "from-env.db", cfg.DB.Path, "environment wins over the file")
	assert.Equal(t, 30, cfg.JWT.ExpiryMinutes)
	assert.Equal(t, "localhost", cfg.DB.Host, "untouched keys keep defaults")
}

func TestLoadConfigDotEnvNamesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crease.toml"), []byte(`
[app]
port = "9100"
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CONFIG_FILE=crease.toml\n"), 0644))
	// godotenv never overrides a set variable, so CONFIG_FILE must be absent.
	t.Setenv("CONFIG_FILE", "")
	require.NoError(t, os.Unsetenv("CONFIG_FILE"))
	log, _ := test.NewNullLogger()

	cfg, err := LoadConfig(log)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.App.Port)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	log, _ := test.NewNullLogger()

	t.Setenv("DB_DRIVER", "oracle")
	_, err := LoadConfig(log)
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("JWT_EXPIRY_MINUTES", "soon")
	_, err = LoadConfig(log)
	assert.Error(t, err)
}

func TestConnectDB(t *testing.T) {
	log, _ := test.NewNullLogger()

	cfg := Default()
	cfg.DB.Driver = DriverMemory
	db, err := ConnectDB(*cfg, log)
	require.NoError(t, err)
	assert.Nil(t, db)

	cfg.DB.Driver = DriverSQLite
	cfg.DB.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.App.Env = "test"
	db, err = ConnectDB(*cfg, log)
	require.NoError(t, err)
	require.NotNil(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	sqlDB.Close()
}
