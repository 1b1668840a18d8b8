package tendril

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneEmpty(t *testing.T) {
	src := New()
	dst := New()
	Clone(dst, src)
	require.Equal(t, "empty", dst.Form())
}

func TestCloneInlineCopiesBytes(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abc")))

	dst := New()
	Clone(dst, src)
	require.Equal(t, "inline", dst.Form())
	require.Equal(t, "abc", string(dst.Bytes()))

	// Independent storage: mutating src must not affect dst.
	require.NoError(t, src.PushBuffer([]byte("d")))
	require.Equal(t, "abc", string(dst.Bytes()))
}

func TestCloneOwnedPromotesBothToShared(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abcdefghi")))
	require.Equal(t, "owned", src.Form())
	originalCap := src.aux

	dst := New()
	Clone(dst, src)

	require.Equal(t, "shared", src.Form(), "promoting to shared mutates the source in place")
	require.Equal(t, "shared", dst.Form())
	require.Equal(t, uint32(2), src.hdr.refcount)
	require.Equal(t, originalCap, src.hdr.capacity, "promotion must write the owned capacity into the header")
	require.Equal(t, uint32(0), src.aux)
	require.Equal(t, uint32(0), dst.aux)
	require.True(t, Equal(src, dst))
}

func TestCloneSharedIncrementsRefcount(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abcdefghi")))
	mid := New()
	Clone(mid, src)
	require.Equal(t, uint32(2), src.hdr.refcount)

	dst := New()
	Clone(dst, mid)
	require.Equal(t, uint32(3), src.hdr.refcount)
	require.True(t, Equal(dst, src))
}

func TestCloneDestroysPriorDestinationContent(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abcdefghi")))

	other := New()
	require.NoError(t, other.PushBuffer([]byte("zzzzzzzzzz")))
	otherHdr := other.hdr

	Clone(other, src)
	require.True(t, Equal(other, src))
	require.NotSame(t, otherHdr, other.hdr)
}

func TestSubOutOfBounds(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abc")))
	dst := New()

	err := Sub(dst, src, 1, 10)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSubOverflowIsOutOfBounds(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abc")))
	dst := New()

	err := Sub(dst, src, 0xFFFFFFFF, 2)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSubEmptyResult(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abc")))
	dst := New()
	require.NoError(t, Sub(dst, src, 1, 0))
	require.Equal(t, "empty", dst.Form())
}

func TestSubShortResultIsInlineEvenFromHeapSource(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("abcdefghijkl")))
	require.Equal(t, "owned", src.Form())

	dst := New()
	require.NoError(t, Sub(dst, src, 2, 5))
	require.Equal(t, "inline", dst.Form())
	require.Equal(t, "cdefg", string(dst.Bytes()))
	require.Equal(t, "owned", src.Form(), "a short sub must not disturb the source's form")
}

func TestSubLongResultSharesAndPromotes(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("Hello, 2015!\n")))
	require.Equal(t, "owned", src.Form())

	sub := New()
	require.NoError(t, Sub(sub, src, 0, 9))

	require.Equal(t, "shared", src.Form())
	require.Equal(t, "shared", sub.Form())
	require.Equal(t, uint32(2), src.hdr.refcount)
	require.Equal(t, uint32(9), sub.Len())
	require.Equal(t, uint32(0), sub.aux)
	require.Equal(t, "Hello, 20", string(sub.Bytes()))

	require.NoError(t, sub.PopBack(4))
	require.Equal(t, "Hello", string(sub.Bytes()))
	require.Equal(t, uint32(5), sub.Len())
	require.Equal(t, uint32(2), src.hdr.refcount, "pop_back must not change the refcount")
}

func TestSubOfSubOffsetsCompound(t *testing.T) {
	src := New()
	require.NoError(t, src.PushBuffer([]byte("0123456789abcdef")))

	first := New()
	require.NoError(t, Sub(first, src, 4, 10))
	require.Equal(t, "456789abcd", string(first.Bytes()))

	second := New()
	require.NoError(t, Sub(second, first, 2, 4))
	require.Equal(t, "6789", string(second.Bytes()))
}
