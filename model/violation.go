package model

type ViolationType string

const (
	ParallelFifths       ViolationType = "parallelFifths"
	ParallelOctaves      ViolationType = "parallelOctaves"
	AntiparallelFifths   ViolationType = "antiparallelFifths"
	AntiparallelOctaves  ViolationType = "antiparallelOctaves"
	HiddenFifths         ViolationType = "hiddenFifths"
	HiddenOctaves        ViolationType = "hiddenOctaves"
	UnresolvedDissonance ViolationType = "unresolvedDissonance"
	VoiceCrossing        ViolationType = "voiceCrossing"
	VoiceOverlap         ViolationType = "voiceOverlap"
	SpacingViolation     ViolationType = "spacingViolation"
	RangeViolation       ViolationType = "rangeViolation"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type RangeSubtype string

const (
	BelowAbsolute    RangeSubtype = "belowAbsolute"
	AboveAbsolute    RangeSubtype = "aboveAbsolute"
	BelowComfortable RangeSubtype = "belowComfortable"
	AboveComfortable RangeSubtype = "aboveComfortable"
)

// Violation is one detected part-writing problem, positioned on the
// beat timeline by Beat and the ids of the notes involved.
type Violation struct {
	ID          string        `json:"id"`
	Type        ViolationType `json:"type"`
	Severity    Severity      `json:"severity"`
	Voice       VoicePart     `json:"voice,omitempty"`
	Voices      []VoicePart   `json:"voices,omitempty"`
	Description string        `json:"description"`
	Suggestion  string        `json:"suggestion"`
	Beat        float64       `json:"beat"`
	NoteIDs     []string      `json:"noteIds"`
	Interval    *int          `json:"interval,omitempty"`
	Subtype     RangeSubtype  `json:"rangeSubtype,omitempty"`
}
