package domain

import (
	"strings"
	"time"
)

type TourStatus string

const (
	TourActive    TourStatus = "Active"
	TourCompleted TourStatus = "Completed"
)

type TourMode string

const (
	ModeVRHeadset TourMode = "VR Headset"
	ModeMobileAR  TourMode = "Mobile AR"
)

// Tour is an AR/VR experience session tied to a purchased ticket. EndTime is
// zero while the tour is active.
type Tour struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Mode      TourMode
	Status    TourStatus
}

// TourModeFor picks the experience mode from the attraction's activity tag:
// anything advertising VR gets a headset, the rest runs as mobile AR.
func TourModeFor(activity string) TourMode {
	if strings.Contains(activity, "VR") {
		return ModeVRHeadset
	}
	return ModeMobileAR
}
