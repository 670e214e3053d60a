package entities

import "time"

// PhotoStage is the taxonomy bucket describing when in the repair process a
// photo was taken. A photo belongs to exactly one stage for its lifetime.

type PhotoStage string

const (
	PhotoStageBefore PhotoStage = "before"
	PhotoStageDuring PhotoStage = "during"
	PhotoStageAfter  PhotoStage = "after"
)

func (s PhotoStage) IsValid() bool {
	switch s {
	case PhotoStageBefore, PhotoStageDuring, PhotoStageAfter:
		return true
	}
	return false
}

// Photo is one stage-tagged image attached to a Job.
//
//   - URL is an opaque encoded-image reference (data URI or remote URL); the
//     core never decodes or transforms it.
//   - Description is AI-sourced and human-editable afterwards; Comment is
//     operator-authored. Both keep the unset vs empty-string distinction, so
//     they are pointers with omitempty.
//   - Timestamp is set at creation and never mutated.
type Photo struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Stage       PhotoStage `json:"stage"`
	Timestamp   time.Time  `json:"timestamp"`
	Description *string    `json:"description,omitempty"`
	Comment     *string    `json:"comment,omitempty"`
}
