package tracking

const (
	// DefaultMaxAge is how many frames a track may go unmatched before eviction.
	DefaultMaxAge = 30

	// DefaultIoUThreshold is the stricter general-purpose matching threshold.
	// The live pipeline instance uses the looser LiveIoUThreshold preset.
	DefaultIoUThreshold = 0.3

	// LiveIoUThreshold is the preset used for the service's long-running tracker.
	LiveIoUThreshold = 0.25
)

// Tracker assigns persistent identities to per-frame detections with greedy
// IoU matching. It is single-writer: Update and Reset mutate internal state
// without locking, so callers must serialize access (the Pipeline does).
type Tracker struct {
	maxAge       int
	iouThreshold float64

	// Insertion order is load-bearing: existing tracks claim detections in
	// the order they were created, and ties on equal IoU go to the earlier
	// detection in input order.
	tracks     []*track
	nextID     int
	frameCount int
}

func NewTracker(maxAge int, iouThreshold float64) *Tracker {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if iouThreshold <= 0 {
		iouThreshold = DefaultIoUThreshold
	}

	return &Tracker{
		maxAge:       maxAge,
		iouThreshold: iouThreshold,
		nextID:       1,
	}
}

// Update ingests one frame's detections and returns the subset that now carry
// a track identity: matched detections stamped with their existing id plus
// unmatched detections registered under freshly minted ids. Stale tracks that
// found no match this frame contribute nothing to the result; they are kept
// until their age reaches maxAge and then evicted for good.
func (t *Tracker) Update(detections []Detection) []Detection {
	t.frameCount++

	if len(detections) == 0 {
		retained := t.tracks[:0]
		for _, tr := range t.tracks {
			if t.frameCount-tr.lastSeen < t.maxAge {
				retained = append(retained, tr)
			}
		}
		t.tracks = retained
		return []Detection{}
	}

	matched := make(map[int]bool, len(detections))
	result := make([]Detection, 0, len(detections))

	retained := t.tracks[:0]
	for _, tr := range t.tracks {
		bestIoU := 0.0
		bestIdx := -1

		for idx := range detections {
			if matched[idx] {
				continue
			}
			iou := IoU(tr.box, detections[idx])
			if iou > bestIoU && iou > t.iouThreshold {
				bestIoU = iou
				bestIdx = idx
			}
		}

		if bestIdx != -1 {
			matched[bestIdx] = true
			detections[bestIdx].TrackID = tr.id
			tr.box = detections[bestIdx]
			tr.lastSeen = t.frameCount
			result = append(result, detections[bestIdx])
			retained = append(retained, tr)
			continue
		}

		// Evicted ids are never reissued.
		if t.frameCount-tr.lastSeen >= t.maxAge {
			continue
		}
		retained = append(retained, tr)
	}
	t.tracks = retained

	for idx := range detections {
		if matched[idx] {
			continue
		}
		detections[idx].TrackID = t.nextID
		t.nextID++
		t.tracks = append(t.tracks, &track{
			id:       detections[idx].TrackID,
			box:      detections[idx],
			lastSeen: t.frameCount,
		})
		result = append(result, detections[idx])
	}

	return result
}

// Reset forgets every track and restarts the id and frame counters. Formerly
// issued identities become permanently unreachable.
func (t *Tracker) Reset() {
	t.tracks = nil
	t.nextID = 1
	t.frameCount = 0
}

func (t *Tracker) ActiveTrackCount() int {
	return len(t.tracks)
}

func (t *Tracker) FrameCount() int {
	return t.frameCount
}
