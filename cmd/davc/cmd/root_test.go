package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	p := filepath.Join(t.TempDir(), "davc_config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestInitContextFirstValidConfigWins(t *testing.T) {
	valid := writeConfigFile(t, `{"schema":"http","host":"dav.example.com","log_level":"error"}`)
	ctx := &Context{}
	// later fallback candidates do not exist; the parsed config must survive
	err := initContext(ctx, []string{valid, "/no/such/config.json"})
	require.NoError(t, err)
	require.NotNil(t, ctx.Config)
	assert.Equal(t, "dav.example.com", ctx.Config.Host)
	assert.NotNil(t, ctx.Cli)
}

func TestInitContextFallbackOrder(t *testing.T) {
	valid := writeConfigFile(t, `{"schema":"http","host":"dav.example.com","log_level":"error"}`)
	ctx := &Context{}
	err := initContext(ctx, []string{"/no/such/config.json", valid})
	require.NoError(t, err)
	assert.Equal(t, "dav.example.com", ctx.Config.Host)
}

func TestInitContextNoValidConfig(t *testing.T) {
	ctx := &Context{}
	err := initContext(ctx, []string{"/no/such/a.json", "/no/such/b.json"})
	assert.Error(t, err)
}
