package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWideBoxes(t *testing.T) {
	t.Parallel()

	t.Run("boundary aspect ratio is not split", func(t *testing.T) {
		t.Parallel()
		dets := []Detection{{X: 10, Y: 20, Width: 180, Height: 100, Confidence: 0.9, ClassName: "pig"}}

		out := SplitWideBoxes(dets, 640, 480)

		require.Len(t, out, 1)
		assert.Equal(t, dets[0], out[0])
	})

	t.Run("box just past the threshold is split in two", func(t *testing.T) {
		t.Parallel()
		dets := []Detection{{X: 10, Y: 20, Width: 181, Height: 100, Confidence: 0.9, ClassName: "pig"}}

		out := SplitWideBoxes(dets, 640, 480)

		require.Len(t, out, 2)

		left, right := out[0], out[1]
		assert.InDelta(t, 10.0, left.X, 1e-9)
		assert.InDelta(t, 81.45, left.Width, 1e-9)
		assert.InDelta(t, 10.0+90.5*1.1, right.X, 1e-9)
		assert.InDelta(t, 81.45, right.Width, 1e-9)

		for _, d := range out {
			assert.InDelta(t, 20.0, d.Y, 1e-9)
			assert.InDelta(t, 100.0, d.Height, 1e-9)
			assert.InDelta(t, 0.9*0.85, d.Confidence, 1e-9)
			assert.Equal(t, "pig", d.ClassName)
			assert.Zero(t, d.TrackID)
		}
	})

	t.Run("split halves do not overlap", func(t *testing.T) {
		t.Parallel()
		dets := []Detection{{X: 0, Y: 0, Width: 300, Height: 100, Confidence: 1, ClassName: "pig"}}

		out := SplitWideBoxes(dets, 0, 0)

		require.Len(t, out, 2)
		assert.Less(t, out[0].X+out[0].Width, out[1].X)
	})

	t.Run("splitting is idempotent on its own output", func(t *testing.T) {
		t.Parallel()
		dets := []Detection{{X: 5, Y: 5, Width: 400, Height: 100, Confidence: 0.8, ClassName: "pig"}}

		once := SplitWideBoxes(dets, 0, 0)
		twice := SplitWideBoxes(once, 0, 0)

		assert.Equal(t, once, twice)
	})

	t.Run("zero height passes through untouched", func(t *testing.T) {
		t.Parallel()
		dets := []Detection{{X: 1, Y: 2, Width: 500, Height: 0, Confidence: 0.7, ClassName: "pig"}}

		out := SplitWideBoxes(dets, 0, 0)

		require.Len(t, out, 1)
		assert.Equal(t, dets[0], out[0])
	})

	t.Run("mixed input splits only the wide boxes", func(t *testing.T) {
		t.Parallel()
		dets := []Detection{
			{X: 0, Y: 0, Width: 50, Height: 100, Confidence: 0.9, ClassName: "pig"},
			{X: 100, Y: 0, Width: 250, Height: 100, Confidence: 0.9, ClassName: "pig"},
			{X: 400, Y: 0, Width: 90, Height: 100, Confidence: 0.9, ClassName: "pig"},
		}

		out := SplitWideBoxes(dets, 0, 0)

		assert.Len(t, out, 4)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, SplitWideBoxes(nil, 0, 0))
	})
}
