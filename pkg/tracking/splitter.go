package tracking

// Boxes wider than this aspect ratio are assumed to cover two adjacent animals.
const wideBoxAspectRatio = 1.8

// SplitWideBoxes repairs the detector failure mode where one box spans two
// animals standing side by side. A detection whose aspect ratio exceeds the
// wide-box threshold is replaced by two synthetic halves; the horizontal gap
// between them and the confidence discount keep the halves from matching each
// other and mark them as less certain than a direct detection.
//
// imageWidth and imageHeight are part of the signature for future ratio-aware
// splitting; the current rule is dimension independent.
func SplitWideBoxes(detections []Detection, imageWidth, imageHeight int) []Detection {
	result := make([]Detection, 0, len(detections))

	for _, det := range detections {
		if det.Height <= 0 {
			result = append(result, det)
			continue
		}

		if det.Width/det.Height > wideBoxAspectRatio {
			halfWidth := det.Width / 2

			result = append(result, Detection{
				X:          det.X,
				Y:          det.Y,
				Width:      halfWidth * 0.9,
				Height:     det.Height,
				Confidence: det.Confidence * 0.85,
				ClassName:  det.ClassName,
			})
			result = append(result, Detection{
				X:          det.X + halfWidth*1.1,
				Y:          det.Y,
				Width:      halfWidth * 0.9,
				Height:     det.Height,
				Confidence: det.Confidence * 0.85,
				ClassName:  det.ClassName,
			})
			continue
		}

		result = append(result, det)
	}

	return result
}
