package tracking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineProcess(t *testing.T) {
	t.Parallel()

	t.Run("splits before tracking", func(t *testing.T) {
		t.Parallel()
		p := NewPipeline()

		// One merged box covering two animals comes back as two tracked halves.
		out := p.Process([]Detection{
			{X: 0, Y: 0, Width: 300, Height: 100, Confidence: 0.9, ClassName: "pig"},
		}, 640, 480)

		require.Len(t, out, 2)
		assert.Equal(t, 1, out[0].TrackID)
		assert.Equal(t, 2, out[1].TrackID)
		assert.Equal(t, 2, p.ActiveTrackCount())
	})

	t.Run("identities survive across frames", func(t *testing.T) {
		t.Parallel()
		p := NewPipeline()
		box := Detection{X: 10, Y: 10, Width: 50, Height: 50, Confidence: 0.9, ClassName: "pig"}

		first := p.Process([]Detection{box}, 640, 480)
		second := p.Process([]Detection{box}, 640, 480)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].TrackID, second[0].TrackID)
	})

	t.Run("reset clears identities", func(t *testing.T) {
		t.Parallel()
		p := NewPipeline()
		box := Detection{X: 10, Y: 10, Width: 50, Height: 50, Confidence: 0.9, ClassName: "pig"}

		p.Process([]Detection{box}, 640, 480)
		p.Reset()

		assert.Equal(t, 0, p.ActiveTrackCount())
		assert.Equal(t, 0, p.FrameCount())
	})

	t.Run("concurrent frames are serialized", func(t *testing.T) {
		t.Parallel()
		p := NewPipeline()
		box := Detection{X: 10, Y: 10, Width: 50, Height: 50, Confidence: 0.9, ClassName: "pig"}

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.Process([]Detection{box}, 640, 480)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, p.ActiveTrackCount())
		assert.Equal(t, 50, p.FrameCount())
	})
}
