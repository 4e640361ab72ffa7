package mem

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/api"
)

func TestMapRoundsUpToPageSize(t *testing.T) {
	r := Map(1)
	defer r.Release()

	require.GreaterOrEqual(t, r.Len(), os.Getpagesize())
	require.Zero(t, r.Len()%os.Getpagesize())
}

func TestRegionReadWrite(t *testing.T) {
	r := Map(128)
	defer r.Release()

	b := r.Bytes()
	for i := range b {
		b[i] = byte(i)
	}
	require.Equal(t, byte(100), r.Bytes()[100])
}

func TestDoubleReleaseFails(t *testing.T) {
	r := Map(64)
	require.NoError(t, r.Release())
	require.ErrorIs(t, r.Release(), api.ErrRegionReleased)
}

func TestZeroSizeRegion(t *testing.T) {
	r := Map(0)
	require.Zero(t, r.Len())
	require.False(t, r.Mapped())
	require.NoError(t, r.Release())
}

func TestNegativeSizePanics(t *testing.T) {
	require.Panics(t, func() { Map(-1) })
}
