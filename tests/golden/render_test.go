package golden_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/domkit"
	"github.com/aretw0/domkit/pkg/patch"
)

// TestPatchedRender locks the serialized output of a patched document.
// Regenerate with: go test ./tests/golden -update
func TestPatchedRender(t *testing.T) {
	d, err := domkit.Open("testdata/page.html")
	require.NoError(t, err)

	manifest, err := patch.LoadFile("testdata/patch.yaml")
	require.NoError(t, err)

	applied, err := manifest.Apply(d)
	require.NoError(t, err)
	require.Equal(t, len(manifest.Ops), applied)

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))

	g := goldie.New(t)
	g.Assert(t, "patched", buf.Bytes())
}

// TestUnpatchedRender locks the parser normalization of the input alone,
// so golden diffs in TestPatchedRender are attributable to the patch.
func TestUnpatchedRender(t *testing.T) {
	d, err := domkit.Open("testdata/page.html")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))

	g := goldie.New(t)
	g.Assert(t, "unpatched", buf.Bytes())
}
