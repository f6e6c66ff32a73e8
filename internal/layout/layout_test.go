package layout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-flythrough/internal/config"
	"tube-flythrough/internal/decor"
	"tube-flythrough/internal/palette"
	"tube-flythrough/internal/spline"
)

func TestBuildDefaultScene(t *testing.T) {
	s := config.Default()
	l, err := Build(spline.Default(), s, decor.NewSource(11))
	require.NoError(t, err)

	assert.Len(t, l.Tube.Vertices, (s.TubeSegments+1)*(s.TubeRadial+1))
	assert.NotEmpty(t, l.TubeLines)
	assert.Len(t, l.Path, s.PathDivisions+1)
	require.Len(t, l.Boxes, s.Boxes.Count)
	for _, b := range l.Boxes {
		require.Len(t, b.Outline, 12)
		for _, seg := range b.Outline {
			assert.InDelta(t, s.BoxSize, seg[1].Sub(seg[0]).Len(), 1e-5)
			// a rotated cube never reaches further than half its diagonal
			assert.Less(t, seg[0].Sub(b.Position).Len(), s.BoxSize)
		}
	}
	assert.Equal(t, len(l.TubeLines)+12*s.Boxes.Count, l.SegmentCount())
}

func TestBuildTubeLinesStayOnTube(t *testing.T) {
	s := config.Default()
	s.TubeSegments = 40
	s.TubeRadial = 6
	l, err := Build(spline.Default(), s, decor.NewSource(2))
	require.NoError(t, err)
	// at least every lengthwise line, at most every mesh edge
	assert.GreaterOrEqual(t, len(l.TubeLines), s.TubeSegments*s.TubeRadial)
	assert.LessOrEqual(t, len(l.TubeLines), 3*s.TubeSegments*s.TubeRadial)
}

func TestBuildPropagatesPlacementError(t *testing.T) {
	s := config.Default()
	s.Boxes.Count = 0
	_, err := Build(spline.Default(), s, decor.NewSource(1))
	assert.ErrorIs(t, err, decor.ErrNoBoxes)
}

func TestAheadFindsNextBoxAlongCurve(t *testing.T) {
	l, err := Build(spline.Default(), config.Default(), decor.NewSource(4))
	require.NoError(t, err)

	for _, b := range l.Boxes {
		got, ok := l.Ahead(b.T)
		require.True(t, ok)
		assert.Equal(t, b.ID, got.ID)
	}

	// just past a box, the next one is further along (or wraps to the lowest T)
	first := l.Boxes[0]
	got, ok := l.Ahead(first.T + 1e-9)
	require.True(t, ok)
	assert.NotEqual(t, first.ID, got.ID)
	for _, b := range l.Boxes {
		if b.ID == got.ID || b.ID == first.ID {
			continue
		}
		ahead := b.T - first.T
		if ahead < 0 {
			ahead++
		}
		chosen := got.T - first.T
		if chosen < 0 {
			chosen++
		}
		assert.Less(t, chosen, ahead)
	}
}

func TestAheadWithoutBoxes(t *testing.T) {
	_, ok := (&Layout{}).Ahead(0.5)
	assert.False(t, ok)
}

func TestBoxString(t *testing.T) {
	b := Box{Instance: decor.Instance{
		ID:    uuid.MustParse("6ba7b810-9dad-41d1-80b4-00c04fd430c8"),
		Index: 7,
		T:     0.25,
		Hue:   palette.Hue(0.25),
	}}
	assert.Equal(t, "box 7 6ba7b810-9dad-41d1-80b4-00c04fd430c8 t=0.250 hue=0.450", b.String())
}
