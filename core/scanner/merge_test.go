package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cpgscan-core/sequence"
)

func TestMergeEmpty(t *testing.T) {
	seq := sequence.Bytes("ACGT")
	require.Empty(t, Merge(seq, nil, 100))
}

func TestMergeSmallGapCoalesces(t *testing.T) {
	// Two 200 bp CG islands bridged by 50 bp of A: gap < 100 merges.
	raw := strings.Repeat("CG", 100) + strings.Repeat("A", 50) + strings.Repeat("CG", 100)
	seq := sequence.Bytes(raw)
	islands := []Island{
		{Begin: 0, End: 200, Size: 200, GCFraction: 1.0, ObsExp: 2.0},
		{Begin: 250, End: 450, Size: 200, GCFraction: 1.0, ObsExp: 2.0},
	}

	got := Merge(seq, islands, 100)
	require.Len(t, got, 1)
	isl := got[0]
	require.Equal(t, 0, isl.Begin)
	require.Equal(t, 450, isl.End)
	require.Equal(t, 450, isl.Size)
	// Statistics are recomputed over the bridged span, gap included:
	// gc = 400/450, obs = 200, expected = (400/2)^2/450.
	require.InDelta(t, 400.0/450.0, isl.GCFraction, 1e-12)
	require.InDelta(t, 200.0/(200.0*200.0/450.0), isl.ObsExp, 1e-12)
}

func TestMergeWideGapStaysDistinct(t *testing.T) {
	raw := strings.Repeat("CG", 100) + strings.Repeat("A", 150) + strings.Repeat("CG", 100)
	seq := sequence.Bytes(raw)
	islands := []Island{
		{Begin: 0, End: 200, Size: 200, GCFraction: 1.0, ObsExp: 2.0},
		{Begin: 350, End: 550, Size: 200, GCFraction: 1.0, ObsExp: 2.0},
	}

	got := Merge(seq, islands, 100)
	require.Equal(t, islands, got)
}

func TestMergeChainsAndIsIdempotent(t *testing.T) {
	raw := strings.Repeat("CG", 300)
	seq := sequence.Bytes(raw)
	islands := []Island{
		{Begin: 0, End: 200},
		{Begin: 250, End: 440},
		{Begin: 450, End: 560},
	}

	got := Merge(seq, islands, 100)
	require.Len(t, got, 1)
	require.Equal(t, 0, got[0].Begin)
	require.Equal(t, 560, got[0].End)

	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i].Begin-got[i-1].End, 100)
	}
	require.Equal(t, got, Merge(seq, got, 100))
}

func TestMergeGapBoundaryIsExclusive(t *testing.T) {
	// A gap of exactly MergeGap symbols is NOT merged.
	raw := strings.Repeat("CG", 250)
	seq := sequence.Bytes(raw)
	islands := []Island{
		{Begin: 0, End: 200},
		{Begin: 300, End: 500},
	}
	require.Len(t, Merge(seq, islands, 100), 2)
	require.Len(t, Merge(seq, islands, 101), 1)
}
