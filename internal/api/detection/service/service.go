package detectionService

import (
	"os"

	"TutelaGolang/internal/api/detection"
	detectionRepository "TutelaGolang/internal/api/detection/repository"
	"TutelaGolang/internal/entity"
	detectorPkg "TutelaGolang/pkg/detector"
	"TutelaGolang/pkg/redis"
	"TutelaGolang/pkg/s3"
	"TutelaGolang/pkg/tracking"
	"TutelaGolang/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IDetectionService interface {
	DetectImage(ctx context.Context, imageBytes []byte, fileName string) (*detection.FrameDetectionResponse, error)
	DetectFrame(ctx context.Context, req detection.FrameRequest) (*detection.FrameDetectionResponse, error)
	ProcessWSFrame(message []byte) (*detection.FrameDetectionResponse, error)
	ModelInfo(ctx context.Context) (*entity.ModelInfo, error)
	ResetTracker(ctx context.Context) detection.ResetTrackerResponse
	TrackerStatus(ctx context.Context) detection.TrackerStatusResponse
	RecentFrames(ctx context.Context, limit int, source string) ([]detection.FrameSummary, error)
}

type detectionService struct {
	log           *logrus.Logger
	detector      detectorPkg.IDetector
	pipeline      *tracking.Pipeline
	repository    detectionRepository.Repository
	redisServer   redis.IRedis
	s3Client      s3.ItfS3
	utils         utils.IUtils
	archiveFrames bool
}

func NewDetectionService(
	log *logrus.Logger,
	detector detectorPkg.IDetector,
	pipeline *tracking.Pipeline,
	repository detectionRepository.Repository,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IDetectionService {
	return &detectionService{
		log:           log,
		detector:      detector,
		pipeline:      pipeline,
		repository:    repository,
		redisServer:   redisServer,
		s3Client:      s3Client,
		utils:         utils,
		archiveFrames: os.Getenv("ARCHIVE_FRAMES") == "true",
	}
}
