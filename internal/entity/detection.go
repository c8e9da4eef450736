package entity

import "TutelaGolang/pkg/tracking"

// DetectorResult is one inference response from the detector sidecar: the raw
// per-frame boxes plus the dimensions of the image they were computed on.
type DetectorResult struct {
	Detections  []tracking.Detection `json:"detections"`
	ImageWidth  int                  `json:"image_width"`
	ImageHeight int                  `json:"image_height"`
}

type ModelInfo struct {
	ModelType     string            `json:"model_type"`
	Task          string            `json:"task"`
	Classes       map[string]string `json:"classes"`
	InputSize     int               `json:"input_size"`
	ConfThreshold float64           `json:"conf_threshold"`
	IoUThreshold  float64           `json:"iou_threshold"`
	MaxDetections int               `json:"max_detections"`
	BoxSplitting  string            `json:"box_splitting"`
}

type FrameSource string

const (
	FrameSourceImage     FrameSource = "IMAGE"
	FrameSourceFrame     FrameSource = "FRAME"
	FrameSourceWebsocket FrameSource = "WEBSOCKET"
)
