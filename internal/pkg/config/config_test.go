package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
db_username: app
db_password: secret
db_host: localhost
db_port: "5432"
db_name: timeclock
first_period_end: 14
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "app", c.DBUsername)
	assert.Equal(t, 14, c.FirstPeriodEnd)

	// defaults
	assert.Equal(t, 30, c.SecondPeriodEnd)
	assert.Equal(t, 5, c.PayProcessingDelay)
	assert.Equal(t, 3, c.HistoryPeriods)
	assert.Equal(t, "./private.pem", c.PrivateKeyFile)
	assert.Equal(t, 10, c.LoginCodeTTLMinutes)
}

func TestLoadMissingDatabase(t *testing.T) {
	path := writeConfig(t, `
db_username: app
db_host: localhost
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
