package rule

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
)

// Spacing flags adjacent upper voices spread wider than the configured
// maximum. With three or more voices the bottom pair is exempt (the
// bass may sit far below the tenor); the topmost pair uses the upper
// threshold, remaining pairs the inner one. For SATB this is exactly
// soprano-alto and alto-tenor.
func Spacing(s model.BeatSnapshot, parts []model.VoicePart, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckSpacing {
		return res
	}

	pairs := voice.AdjacentPairs(parts)
	if len(parts) >= 3 && len(pairs) > 0 {
		pairs = pairs[:len(pairs)-1]
	}

	for i, pair := range pairs {
		upper, lower, ok := pairNotes(s, pair)
		if !ok {
			continue
		}
		max := cfg.MaxInnerSpacing
		if i == 0 {
			max = cfg.MaxUpperSpacing
		}
		gap := upper.Pitch - lower.Pitch
		if gap > max {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.SpacingViolation,
				Severity:    model.SeverityWarning,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("%v and %v are %v semitones apart (max %v)", pair[0], pair[1], gap, max),
				Suggestion:  "Keep adjacent upper voices within an octave of each other",
				Beat:        s.Beat,
				NoteIDs:     []string{upper.NoteID, lower.NoteID},
				Interval:    intp(gap),
			})
		}
	}
	return res
}
