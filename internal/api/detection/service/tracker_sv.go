package detectionService

import (
	"encoding/json"
	"time"

	"TutelaGolang/internal/api/detection"
	"TutelaGolang/internal/entity"
	contextPkg "TutelaGolang/pkg/context"
	"TutelaGolang/pkg/tracking"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const modelInfoCacheTTL = 5 * time.Minute

// ResetTracker drops every live identity. The pipeline serializes the reset
// against in-flight frames, so callers never observe a half-reset state.
func (s *detectionService) ResetTracker(ctx context.Context) detection.ResetTrackerResponse {
	s.pipeline.Reset()

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
	}).Info("Tracker state reset")

	return detection.ResetTrackerResponse{
		Status:       "tracker reset",
		ActiveTracks: s.pipeline.ActiveTrackCount(),
	}
}

func (s *detectionService) TrackerStatus(ctx context.Context) detection.TrackerStatusResponse {
	status := detection.TrackerStatusResponse{
		ActiveTracks: s.pipeline.ActiveTrackCount(),
		FrameCount:   s.pipeline.FrameCount(),
	}

	// Rolling counters are advisory; status must not depend on Redis health.
	if frames, err := s.redisServer.GetFramesProcessed(ctx); err == nil {
		status.FramesProcessed = frames
	}
	if at, err := s.redisServer.GetLastFrameAt(ctx); err == nil {
		status.LastFrameAt = at
	}

	return status
}

func (s *detectionService) ModelInfo(ctx context.Context) (*entity.ModelInfo, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if cached, err := s.redisServer.GetModelInfo(ctx); err == nil && cached != "" {
		var info entity.ModelInfo
		if err := json.Unmarshal([]byte(cached), &info); err == nil {
			return &info, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Discarding malformed cached model info")
	}

	info, err := s.detector.ModelInfo()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch model info from detector")
		return nil, detection.ErrDetectorUnavailable
	}

	info.BoxSplitting = "enabled"
	if info.IoUThreshold == 0 {
		info.IoUThreshold = tracking.LiveIoUThreshold
	}

	if payload, err := json.Marshal(info); err == nil {
		_ = s.redisServer.SetModelInfo(ctx, string(payload), modelInfoCacheTTL)
	}

	return info, nil
}

func (s *detectionService) RecentFrames(ctx context.Context, limit int, source string) ([]detection.FrameSummary, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	repoClient, err := s.repository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, detection.ErrInternalServerError
	}

	var results []entity.FrameResult
	if source != "" {
		results, err = repoClient.Frames.GetFrameResultsBySource(ctx, entity.FrameSource(source), limit)
	} else {
		results, err = repoClient.Frames.GetRecentFrameResults(ctx, limit)
	}
	if err != nil {
		return nil, detection.ErrInternalServerError
	}

	summaries := make([]detection.FrameSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, detection.FrameSummary{
			ID:             r.ID,
			FrameID:        r.FrameID,
			DetectionCount: r.DetectionCount,
			TrackCount:     r.TrackCount,
			ProcessingMs:   r.ProcessingMs,
			Source:         string(r.Source),
			CreatedAt:      r.CreatedAt,
		})
	}

	return summaries, nil
}
