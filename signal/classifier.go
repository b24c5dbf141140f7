package signal

import (
	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/parameter"
	"github.com/lixenwraith/graspease/vmath"
)

// Hand landmark indices in the 21-point hand model
const (
	LandmarkWrist     = 0
	LandmarkIndexTip  = 8
	LandmarkPinkyBase = 17
	LandmarkCount     = 21
)

// Classify applies the openness rule to normalized landmark coordinates
// OPEN when |indexTip - pinkyBase| / |wrist - pinkyBase| exceeds the threshold; a zero reference distance is CLOSED
func Classify(wrist, indexTip, pinkyBase core.Point) core.Control {
	spread := vmath.Distance(indexTip.X, indexTip.Y, pinkyBase.X, pinkyBase.Y)
	ref := vmath.Distance(wrist.X, wrist.Y, pinkyBase.X, pinkyBase.Y)
	if ref == 0 {
		return core.Closed
	}
	return core.Control(spread/ref > parameter.HandOpenThreshold)
}

// ClassifyHand classifies a full landmark set, CLOSED if the set is too short to hold the needed points
func ClassifyHand(landmarks []core.Point) core.Control {
	if len(landmarks) <= LandmarkPinkyBase {
		return core.Closed
	}
	return Classify(landmarks[LandmarkWrist], landmarks[LandmarkIndexTip], landmarks[LandmarkPinkyBase])
}
