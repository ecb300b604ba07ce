package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	err := os.WriteFile(path, []byte(`{
  "base_url": "http://json.example",
  "request_timeout": "45s"
}`), 0o600)
	assert.NoError(t, err)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"blogctl", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://json.example", c.BaseURL)
	assert.Equal(t, 45*time.Second, c.RequestTimeout)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "session.db", c.SessionDBPath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestParseJson_NoFileIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"blogctl"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://playground-022-backend.vercel.app", c.BaseURL)
}
