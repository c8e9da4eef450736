package detection

import (
	"time"

	"TutelaGolang/pkg/tracking"
)

type FrameRequest struct {
	Image     string  `json:"image" validate:"required"`
	FrameID   int64   `json:"frame_id"`
	Timestamp float64 `json:"timestamp"`
}

type FrameDetectionResponse struct {
	FrameID        int64                `json:"frame_id"`
	Timestamp      float64              `json:"timestamp"`
	Detections     []tracking.Detection `json:"detections"`
	FPS            float64              `json:"fps"`
	ProcessingTime float64              `json:"processing_time"`
}

type WSErrorResponse struct {
	Error string `json:"error"`
}

type TrackerStatusResponse struct {
	ActiveTracks    int       `json:"active_tracks"`
	FrameCount      int       `json:"frame_count"`
	FramesProcessed int64     `json:"frames_processed"`
	LastFrameAt     time.Time `json:"last_frame_at,omitempty"`
}

type ResetTrackerResponse struct {
	Status       string `json:"status"`
	ActiveTracks int    `json:"active_tracks"`
}

type FrameSummary struct {
	ID             string    `json:"id"`
	FrameID        int64     `json:"frame_id"`
	DetectionCount int       `json:"detection_count"`
	TrackCount     int       `json:"track_count"`
	ProcessingMs   float64   `json:"processing_ms"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

type RecentFramesResponse struct {
	Data []FrameSummary `json:"data"`
}
