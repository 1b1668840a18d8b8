package tendril

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	tr := New()
	require.Equal(t, uint32(0), tr.Len())
	require.Equal(t, "empty", tr.Form())
	require.Nil(t, tr.Bytes())
}

func TestInitResetsToEmpty(t *testing.T) {
	tr := New()
	require.NoError(t, tr.PushBuffer([]byte("abcdefghi"))) // force owned
	require.Equal(t, "owned", tr.Form())

	tr.Init()
	require.Equal(t, "empty", tr.Form())
	require.Equal(t, uint32(0), tr.Len())
}

func TestDestroyIsIdempotent(t *testing.T) {
	tr := New()
	require.NoError(t, tr.PushBuffer([]byte("abcdefghi")))
	require.Equal(t, "owned", tr.Form())

	tr.Destroy()
	require.Equal(t, "empty", tr.Form())
	require.Equal(t, uint32(0), tr.Len())

	tr.Destroy() // second call must be a safe no-op
	require.Equal(t, "empty", tr.Form())
}

func TestDestroyOnInlineAndEmptyIsNoOp(t *testing.T) {
	tr := New()
	tr.Destroy()
	require.Equal(t, "empty", tr.Form())

	require.NoError(t, tr.PushBuffer([]byte("abc")))
	require.Equal(t, "inline", tr.Form())
	tr.Destroy()
	require.Equal(t, "empty", tr.Form())
}

func TestClearRetainsOwnedStorage(t *testing.T) {
	tr := New()
	require.NoError(t, tr.PushBuffer([]byte("abcdefghi")))
	require.Equal(t, "owned", tr.Form())

	tr.Clear()
	require.Equal(t, "owned", tr.Form(), "clear must keep owned storage, not revert to empty")
	require.Equal(t, uint32(0), tr.Len())

	// Appending again should reuse the existing allocation without
	// re-promoting through inline.
	require.NoError(t, tr.PushBuffer([]byte("xyz")))
	require.Equal(t, "owned", tr.Form())
	require.Equal(t, "xyz", string(tr.Bytes()))
}

func TestClearOnSharedReleasesReference(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abcdefghi")))

	shared := New()
	Clone(shared, src)
	require.Equal(t, "shared", shared.Form())

	shared.Clear()
	require.Equal(t, "empty", shared.Form())
	require.Equal(t, uint32(1), src.hdr.refcount, "clearing the shared copy must drop the header back to one reference")

	src.Destroy()
}

func TestClearOnInlineAndEmpty(t *testing.T) {
	tr := New()
	tr.Clear()
	require.Equal(t, "empty", tr.Form())

	require.NoError(t, tr.PushBuffer([]byte("abc")))
	tr.Clear()
	require.Equal(t, "empty", tr.Form())
}

func TestDataPointsIntoValueWhenInline(t *testing.T) {
	tr := New()
	require.NoError(t, tr.PushBuffer([]byte("abc")))
	require.Equal(t, "inline", tr.Form())

	p := tr.Data()
	require.Equal(t, &tr.inline[0], (*byte)(p))
}

func TestEqualIgnoresForm(t *testing.T) {
	a := New()
	require.NoError(t, a.PushBuffer([]byte("ab")))

	b := New()
	require.NoError(t, b.PushBuffer([]byte("abcdefghi")))
	require.NoError(t, b.PopBack(7))

	require.True(t, Equal(a, b))

	require.NoError(t, b.PushBuffer([]byte("x")))
	require.False(t, Equal(a, b))
}
