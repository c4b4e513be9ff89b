package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginFreshThenLoaded(t *testing.T) {
	tbl := NewTable()

	m, fresh, err := tbl.Begin("/a.pakhi", "/root.pakhi")
	require.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, Loading, m.State)

	tbl.Finish(m)

	m2, fresh2, err := tbl.Begin("/a.pakhi", "/other.pakhi")
	require.NoError(t, err)
	assert.False(t, fresh2)
	assert.Same(t, m, m2)
	assert.Equal(t, Loaded, m2.State)
}

func TestBeginDetectsCycle(t *testing.T) {
	tbl := NewTable()

	_, fresh, err := tbl.Begin("/a.pakhi", "/root.pakhi")
	require.NoError(t, err)
	require.True(t, fresh)

	_, _, err = tbl.Begin("/b.pakhi", "/a.pakhi")
	require.NoError(t, err)

	_, _, err = tbl.Begin("/a.pakhi", "/b.pakhi")
	assert.Error(t, err)
}

func TestCanonicalizeRelativeToImportingDir(t *testing.T) {
	abs, err := Canonicalize("/project/pkg", "./math.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "/project/pkg/math.pakhi", abs)
}

func TestCanonicalizeAbsolutePath(t *testing.T) {
	abs, err := Canonicalize("/project/pkg", "/shared/util.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "/shared/util.pakhi", abs)
}
