package tracking

import "math"

// Detection is one bounding box reported by the detector for a single frame.
// TrackID is 0 until the tracker assigns an identity; assigned ids start at 1.
type Detection struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	ClassName  string  `json:"class_name"`
	TrackID    int     `json:"track_id,omitempty"`
}

type track struct {
	id       int
	box      Detection
	lastSeen int
}

// IoU computes intersection-over-union of two axis-aligned boxes.
// A union of zero area yields 0, not an error.
func IoU(a, b Detection) float64 {
	xi1 := math.Max(a.X, b.X)
	yi1 := math.Max(a.Y, b.Y)
	xi2 := math.Min(a.X+a.Width, b.X+b.Width)
	yi2 := math.Min(a.Y+a.Height, b.Y+b.Height)

	interArea := math.Max(0, xi2-xi1) * math.Max(0, yi2-yi1)
	unionArea := a.Width*a.Height + b.Width*b.Height - interArea

	if unionArea <= 0 {
		return 0
	}
	return interArea / unionArea
}
