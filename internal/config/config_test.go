package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	yaml := []byte(`
database:
  url: "postgres://file/trivia"
  auto_migrate: true
log:
  level: "debug"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("DATABASE_URL", "postgres://env/trivia")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("port", "", "")
	fs.String("database-url", "", "")
	require.NoError(t, fs.Parse([]string{"--port", ":9090"}))
	require.NoError(t, BindFlags(fs))

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, ":9090", Cfg.Server.Port)
	assert.Equal(t, "postgres://env/trivia", Cfg.Database.URL)
	assert.True(t, Cfg.Database.AutoMigrate)
	assert.Equal(t, "debug", Cfg.Log.Level)
	assert.Equal(t, DefaultCORSAllowedOrigins, Cfg.CORS.AllowedOrigins)
	assert.Equal(t, DefaultCORSMaxAge, Cfg.CORS.MaxAge)
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Cfg = Config{}

	require.NoError(t, LoadConfig(t.TempDir()))

	assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, Cfg.Log.Level)
	assert.Equal(t, DefaultAutoMigrate, Cfg.Database.AutoMigrate)
}
