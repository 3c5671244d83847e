package generate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"entrygen/generate"
)

func TestRenderGolden(t *testing.T) {
	manifest, err := generate.LoadManifest("testdata/counter.yaml")
	require.NoError(t, err)

	out, err := generate.NewWriter(manifest, t.TempDir()).Render()
	require.NoError(t, err)

	want, err := os.ReadFile("testdata/counter_entrypoints.go.golden")
	require.NoError(t, err)
	require.Equal(t, string(want), string(out))
}

func TestWriteFile(t *testing.T) {
	manifest, err := generate.LoadManifest("testdata/counter.yaml")
	require.NoError(t, err)

	dir := t.TempDir()
	err = generate.NewWriter(manifest, dir).Write()
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "counter_entrypoints.go"))
	require.NoError(t, err)

	want, err := os.ReadFile("testdata/counter_entrypoints.go.golden")
	require.NoError(t, err)
	require.Equal(t, string(want), string(written))
}
