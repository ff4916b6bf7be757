package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jt05610/ptnet/builder"
	"github.com/jt05610/ptnet/petrifile/v1/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	empty := t.TempDir()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loop.yml"), []byte(`
name: loop
places: {P1: 1}
transitions: {T1: {inputs: P1, outputs: P1}}
`), 0o644))

	b := builder.NewBuilder(empty).
		WithSearchDirs(dir).
		WithService(&yaml.Service{}, ".yaml", "yml")

	n, err := b.Build(context.Background(), "loop.yml")
	require.NoError(t, err)
	assert.Equal(t, "loop", n.Name)
	assert.Len(t, n.FindArcsPlaceTransition(), 1)

	again, err := b.Build(context.Background(), "loop.yml")
	require.NoError(t, err)
	assert.Same(t, n, again)
}

func TestBuilder_BuildErrors(t *testing.T) {
	b := builder.NewBuilder(t.TempDir()).WithService(&yaml.Service{}, "yaml")

	_, err := b.Build(context.Background(), "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = b.Build(context.Background(), "net.json")
	assert.ErrorIs(t, err, builder.ErrNoService)
}
