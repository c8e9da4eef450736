package detectionService

import (
	"encoding/json"
	"fmt"
	"time"

	"TutelaGolang/internal/api/detection"
	"TutelaGolang/internal/entity"
	contextPkg "TutelaGolang/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *detectionService) DetectImage(ctx context.Context, imageBytes []byte, fileName string) (*detection.FrameDetectionResponse, error) {
	resp, err := s.processFrame(ctx, imageBytes, 0, float64(time.Now().UnixNano())/1e9, entity.FrameSourceImage)
	if err != nil {
		return nil, err
	}

	if s.archiveFrames {
		go s.archiveFrame(imageBytes, fileName)
	}

	return resp, nil
}

func (s *detectionService) DetectFrame(ctx context.Context, req detection.FrameRequest) (*detection.FrameDetectionResponse, error) {
	imageBytes, err := s.utils.DecodeBase64Image(req.Image)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to decode frame payload")
		return nil, detection.ErrInvalidImagePayload
	}

	return s.processFrame(ctx, imageBytes, req.FrameID, req.Timestamp, entity.FrameSourceFrame)
}

// ProcessWSFrame handles one message of the realtime stream: a JSON frame
// request in, a tracked-detections response out.
func (s *detectionService) ProcessWSFrame(message []byte) (*detection.FrameDetectionResponse, error) {
	var req detection.FrameRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return nil, detection.ErrBadRequest
	}

	imageBytes, err := s.utils.DecodeBase64Image(req.Image)
	if err != nil {
		return nil, detection.ErrInvalidImagePayload
	}

	return s.processFrame(context.Background(), imageBytes, req.FrameID, req.Timestamp, entity.FrameSourceWebsocket)
}

// processFrame is the per-frame contract shared by every ingest path:
// detector inference, wide-box splitting, identity tracking, then best-effort
// bookkeeping (frame stats row, rolling Redis counters).
func (s *detectionService) processFrame(ctx context.Context, imageBytes []byte, frameID int64, timestamp float64, source entity.FrameSource) (*detection.FrameDetectionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	start := time.Now()

	raw, err := s.detector.Detect(imageBytes)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"source":     source,
		}).Error("Detector inference failed")
		return nil, detection.ErrDetectorUnavailable
	}

	tracked := s.pipeline.Process(raw.Detections, raw.ImageWidth, raw.ImageHeight)

	processingTime := time.Since(start).Seconds()
	fps := 0.0
	if processingTime > 0 {
		fps = 1.0 / processingTime
	}

	s.recordFrame(ctx, entity.FrameResult{
		FrameID:        frameID,
		DetectionCount: len(raw.Detections),
		TrackCount:     len(tracked),
		ProcessingMs:   processingTime * 1000,
		Source:         source,
	})

	return &detection.FrameDetectionResponse{
		FrameID:        frameID,
		Timestamp:      timestamp,
		Detections:     tracked,
		FPS:            fps,
		ProcessingTime: processingTime,
	}, nil
}

// recordFrame persists per-frame stats and bumps the rolling counters.
// Bookkeeping failures must never fail the frame itself.
func (s *detectionService) recordFrame(ctx context.Context, result entity.FrameResult) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to mint frame result id")
		return
	}
	result.ID = id

	repoClient, err := s.repository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create repository client for frame stats")
		return
	}

	if err := repoClient.Frames.CreateFrameResult(ctx, result); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to persist frame stats")
	}

	if err := s.redisServer.IncrFramesProcessed(ctx); err == nil {
		_ = s.redisServer.TouchLastFrame(ctx, time.Now())
	}
}

func (s *detectionService) archiveFrame(imageBytes []byte, fileName string) {
	key, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithError(err).Warn("Failed to mint archive key")
		return
	}

	location, err := s.s3Client.UploadFrame(fmt.Sprintf("%s-%s", key, fileName), imageBytes, "image/jpeg")
	if err != nil {
		s.log.WithError(err).Warn("Failed to archive frame to S3")
		return
	}

	s.log.WithField("location", location).Debug("Frame archived")
}
