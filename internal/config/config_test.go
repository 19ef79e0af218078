package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  url: postgres://localhost/gamyam_test
email:
  smtp_host: smtp.example.com
  smtp_port: 587
  from_email: reports@example.com
reports:
  root_dir: /var/reports
`)

	cfg, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/gamyam_test", cfg.Database.DSN)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, "/var/reports", cfg.Reports.RootDir)
}

func TestLoadFrom_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost/gamyam
`)

	cfg, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./reports", cfg.Reports.RootDir)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := loadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFrom_BadYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: a: mapping")
	_, err := loadFrom(path)
	assert.Error(t, err)
}
