package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIoU(t *testing.T) {
	t.Parallel()

	a := Detection{X: 0, Y: 0, Width: 10, Height: 10}
	b := Detection{X: 5, Y: 5, Width: 10, Height: 10}

	t.Run("identical boxes score one", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 1.0, IoU(a, a), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, IoU(a, b), IoU(b, a), 1e-9)
	})

	t.Run("quarter overlap", func(t *testing.T) {
		t.Parallel()
		// 25 shared pixels over a union of 175.
		assert.InDelta(t, 25.0/175.0, IoU(a, b), 1e-9)
	})

	t.Run("disjoint boxes score zero", func(t *testing.T) {
		t.Parallel()
		c := Detection{X: 100, Y: 100, Width: 10, Height: 10}
		assert.Zero(t, IoU(a, c))
	})

	t.Run("zero area union scores zero", func(t *testing.T) {
		t.Parallel()
		empty := Detection{X: 3, Y: 3}
		assert.Zero(t, IoU(empty, empty))
	})
}

func TestTrackerIdentityPersistence(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)
	box := Detection{X: 10, Y: 10, Width: 50, Height: 50, Confidence: 0.9, ClassName: "pig"}

	first := tracker.Update([]Detection{box})
	require.Len(t, first, 1)
	assert.Equal(t, 1, first[0].TrackID)

	second := tracker.Update([]Detection{box})
	require.Len(t, second, 1)
	assert.Equal(t, first[0].TrackID, second[0].TrackID)
	assert.Equal(t, 1, tracker.ActiveTrackCount())
}

func TestTrackerNewIdentities(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)

	out := tracker.Update([]Detection{
		{X: 0, Y: 0, Width: 20, Height: 20, ClassName: "pig"},
		{X: 500, Y: 500, Width: 20, Height: 20, ClassName: "pig"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].TrackID)
	assert.Equal(t, 2, out[1].TrackID)

	// A far-away detection on the next frame gets a strictly greater id.
	next := tracker.Update([]Detection{{X: 1000, Y: 0, Width: 20, Height: 20, ClassName: "pig"}})
	require.Len(t, next, 1)
	assert.Equal(t, 3, next[0].TrackID)
	assert.Equal(t, 3, tracker.ActiveTrackCount())
}

func TestTrackerEviction(t *testing.T) {
	t.Parallel()

	t.Run("track ages out after maxAge silent frames", func(t *testing.T) {
		t.Parallel()
		tracker := NewTracker(3, DefaultIoUThreshold)
		box := Detection{X: 10, Y: 10, Width: 50, Height: 50, ClassName: "pig"}

		tracker.Update([]Detection{box})
		require.Equal(t, 1, tracker.ActiveTrackCount())

		tracker.Update(nil)
		tracker.Update(nil)
		assert.Equal(t, 1, tracker.ActiveTrackCount())

		tracker.Update(nil)
		assert.Equal(t, 0, tracker.ActiveTrackCount())
	})

	t.Run("evicted id is never reused", func(t *testing.T) {
		t.Parallel()
		tracker := NewTracker(2, DefaultIoUThreshold)
		box := Detection{X: 10, Y: 10, Width: 50, Height: 50, ClassName: "pig"}

		out := tracker.Update([]Detection{box})
		require.Equal(t, 1, out[0].TrackID)

		tracker.Update(nil)
		tracker.Update(nil)
		require.Equal(t, 0, tracker.ActiveTrackCount())

		reborn := tracker.Update([]Detection{box})
		require.Len(t, reborn, 1)
		assert.Equal(t, 2, reborn[0].TrackID)
	})

	t.Run("eviction also happens on non-empty frames", func(t *testing.T) {
		t.Parallel()
		tracker := NewTracker(2, DefaultIoUThreshold)
		old := Detection{X: 0, Y: 0, Width: 50, Height: 50, ClassName: "pig"}
		far := Detection{X: 900, Y: 900, Width: 50, Height: 50, ClassName: "pig"}

		tracker.Update([]Detection{old})
		tracker.Update([]Detection{far})
		require.Equal(t, 2, tracker.ActiveTrackCount())

		// Frame 3: the first track's age reaches maxAge with no match.
		tracker.Update([]Detection{far})
		assert.Equal(t, 1, tracker.ActiveTrackCount())
	})
}

func TestTrackerStaleTracksStaySilent(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)
	box := Detection{X: 10, Y: 10, Width: 50, Height: 50, ClassName: "pig"}
	far := Detection{X: 900, Y: 900, Width: 50, Height: 50, ClassName: "pig"}

	tracker.Update([]Detection{box})

	// The stale track is retained but must not re-emit its detection.
	out := tracker.Update([]Detection{far})
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].TrackID)
	assert.Equal(t, 2, tracker.ActiveTrackCount())
}

func TestTrackerEmptyFrame(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)
	box := Detection{X: 10, Y: 10, Width: 50, Height: 50, ClassName: "pig"}
	tracker.Update([]Detection{box})

	out := tracker.Update([]Detection{})

	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, 1, tracker.ActiveTrackCount())
}

func TestTrackerReset(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)
	box := Detection{X: 10, Y: 10, Width: 50, Height: 50, ClassName: "pig"}

	out := tracker.Update([]Detection{box})
	require.Equal(t, 1, out[0].TrackID)

	tracker.Reset()
	assert.Equal(t, 0, tracker.ActiveTrackCount())
	assert.Equal(t, 0, tracker.FrameCount())

	// The same box rebuilds from scratch under a fresh identity space.
	again := tracker.Update([]Detection{box})
	require.Len(t, again, 1)
	assert.Equal(t, 1, again[0].TrackID)
}

func TestTrackerTieBreakFirstDetectionWins(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)
	box := Detection{X: 10, Y: 10, Width: 50, Height: 50, ClassName: "pig"}
	tracker.Update([]Detection{box})

	// Two identical candidates: equal IoU against the track, so the earlier
	// one in input order keeps the existing identity.
	out := tracker.Update([]Detection{box, box})

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].TrackID)
	assert.Equal(t, 2, out[1].TrackID)
}

func TestTrackerBelowThresholdStartsNewTrack(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)
	tracker.Update([]Detection{{X: 0, Y: 0, Width: 100, Height: 100, ClassName: "pig"}})

	// Overlap is well under the 0.3 threshold, so this is a new identity.
	out := tracker.Update([]Detection{{X: 90, Y: 90, Width: 100, Height: 100, ClassName: "pig"}})

	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].TrackID)
	assert.Equal(t, 2, tracker.ActiveTrackCount())
}

func TestTrackerDegenerateBoxesBecomeNewTracks(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(DefaultMaxAge, DefaultIoUThreshold)
	empty := Detection{X: 10, Y: 10, ClassName: "pig"}

	first := tracker.Update([]Detection{empty})
	require.Len(t, first, 1)

	// Zero-area boxes never match (IoU 0), so each frame mints a new id.
	second := tracker.Update([]Detection{empty})
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].TrackID, second[0].TrackID)
}
