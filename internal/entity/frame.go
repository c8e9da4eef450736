package entity

import "time"

// FrameResult is the persisted per-frame summary written after each
// processed frame.
type FrameResult struct {
	ID             string
	FrameID        int64
	DetectionCount int
	TrackCount     int
	ProcessingMs   float64
	Source         FrameSource
	CreatedAt      time.Time
}
