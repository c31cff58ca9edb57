package replvars

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultDateFormat, cfg.DateFormat)
	assert.Equal(t, DefaultExcerptLength, cfg.ExcerptLength)
	assert.Equal(t, DefaultSeparator, cfg.Separator)
	assert.Equal(t, StoreDriverNameMemory, cfg.Tools.Driver)
	assert.Equal(t, DefaultTablePrefix, cfg.Tools.TablePrefix)
	assert.Equal(t, DefaultQueryTimeout, cfg.Tools.QueryTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
date_format: "d.m.Y"
excerpt_length: 120
separator: " / "
tools:
  driver: postgres
  dsn: postgres://localhost/wp?sslmode=disable
  table_prefix: site2_
  query_timeout: 5s
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "d.m.Y", cfg.DateFormat)
	assert.Equal(t, 120, cfg.ExcerptLength)
	assert.Equal(t, " / ", cfg.Separator)
	assert.Equal(t, StoreDriverNamePostgres, cfg.Tools.Driver)
	assert.Equal(t, "site2_", cfg.Tools.TablePrefix)
	assert.Equal(t, 5*time.Second, cfg.Tools.QueryTimeout)
}

func TestParseConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("excerpt_length: 80\n"))
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.ExcerptLength)
	assert.Equal(t, DefaultDateFormat, cfg.DateFormat)
	assert.Equal(t, StoreDriverNameMemory, cfg.Tools.Driver)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"bad yaml", "date_format: [", ErrMsgConfigParse},
		{"empty date format", `date_format: ""`, ErrMsgConfigInvalid},
		{"excerpt too long", "excerpt_length: 20000", ErrMsgConfigInvalid},
		{"unknown driver", "tools:\n  driver: mysql", ErrMsgConfigInvalid},
		{"postgres without dsn", "tools:\n  driver: postgres", ErrMsgConfigInvalid},
		{"prefix injection", "tools:\n  table_prefix: \"wp; DROP\"", ErrMsgConfigInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "replvars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \" - \"\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, " - ", cfg.Separator)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgConfigRead)
}

func TestWithConfig(t *testing.T) {
	fc := DefaultConfig()
	fc.DateFormat = "Y"
	fc.ExcerptLength = 10
	fc.Separator = "; "

	cfg := newConfig([]Option{WithConfig(fc)})
	assert.Equal(t, "Y", cfg.formatter.DefaultFormat())
	assert.Equal(t, 10, cfg.excerptLength)
	assert.Equal(t, "; ", cfg.separator)

	cfg = newConfig([]Option{WithConfig(nil)})
	assert.Equal(t, DefaultDateFormat, cfg.formatter.DefaultFormat())
}
