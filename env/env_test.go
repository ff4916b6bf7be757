package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, k := range []string{FormatKey, OutputDirKey, RankDirKey, DebugKey} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	e, err := LoadEnv(zap.NewNop(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Defaults, *e)
}

func TestLoadEnv_File(t *testing.T) {
	for _, k := range []string{FormatKey, OutputDirKey, RankDirKey, DebugKey} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PTNET_FORMAT=pnml\nPTNET_DEBUG=true\n"), 0o644))
	t.Setenv(RankDirKey, "TB")

	e, err := LoadEnv(zap.NewNop(), path)
	require.NoError(t, err)
	assert.Equal(t, "pnml", e.Format)
	assert.Equal(t, "TB", e.RankDir)
	assert.True(t, e.Debug)
	assert.Equal(t, "", e.OutputDir)
}

func TestLoadEnv_MalformedDebug(t *testing.T) {
	t.Setenv(DebugKey, "sometimes")
	e, err := LoadEnv(zap.NewNop(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, e.Debug)
}
