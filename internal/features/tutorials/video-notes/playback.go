package videonotes

import (
	"college-portal/internal/common/errors"
	"college-portal/internal/models"
)

// Progress reports how far into a video the viewer is.
func Progress(videoID string, current, duration float64) (models.VideoProgress, error) {
	if duration <= 0 {
		return models.VideoProgress{}, errors.NewInvalidRequestError("duration must be positive")
	}
	if current < 0 {
		return models.VideoProgress{}, errors.NewInvalidRequestError("current time must not be negative")
	}
	fraction := current / duration
	return models.VideoProgress{
		VideoID:           videoID,
		CurrentTime:       current,
		Duration:          duration,
		Completed:         fraction > CompletionThreshold,
		WatchedPercentage: fraction * 100,
	}, nil
}

// ActiveSegment returns the first segment whose [Start, End] contains t.
func ActiveSegment(transcript []models.TranscriptSegment, t float64) (models.TranscriptSegment, bool) {
	for _, seg := range transcript {
		if t >= seg.Start && t <= seg.End {
			return seg, true
		}
	}
	return models.TranscriptSegment{}, false
}
