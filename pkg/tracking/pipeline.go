package tracking

import "sync"

// Pipeline is the per-frame processing chain the service owns: wide-box
// splitting followed by identity tracking. It serializes access to the
// tracker, which is the single-writer part of the chain; Reset shares the
// same critical section so a reset can never interleave with an update.
type Pipeline struct {
	mu      sync.Mutex
	tracker *Tracker
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		tracker: NewTracker(DefaultMaxAge, LiveIoUThreshold),
	}
}

// Process runs one frame through the splitter and the tracker and returns
// the detections that now carry track identities.
func (p *Pipeline) Process(detections []Detection, imageWidth, imageHeight int) []Detection {
	split := SplitWideBoxes(detections, imageWidth, imageHeight)

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker.Update(split)
}

func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tracker.Reset()
}

func (p *Pipeline) ActiveTrackCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker.ActiveTrackCount()
}

func (p *Pipeline) FrameCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker.FrameCount()
}
