package rule

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/interval"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
)

// Hiddens flags arriving at a perfect fifth/octave by similar motion
// from a non-perfect interval. Pairs other than the two outermost
// voices are downgraded to info regardless of strictness.
func Hiddens(prev, curr model.BeatSnapshot, parts []model.VoicePart, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckHiddenFifths && !cfg.CheckHiddenOctaves {
		return res
	}
	if len(parts) < 2 {
		return res
	}
	outerHigh, outerLow := parts[0], parts[len(parts)-1]

	for _, pair := range voice.Pairs(parts) {
		pu, pl, ok := pairNotes(prev, pair)
		if !ok {
			continue
		}
		cu, cl, ok := pairNotes(curr, pair)
		if !ok {
			continue
		}
		if interval.ClassifyMotion(pu.Pitch, cu.Pitch, pl.Pitch, cl.Pitch) != interval.Similar {
			continue
		}

		sev := severityFor(hiddenSeverity, cfg.Strictness)
		if pair[0] != outerHigh || pair[1] != outerLow {
			sev = model.SeverityInfo
		}

		prevInt := pu.Pitch - pl.Pitch
		currInt := cu.Pitch - cl.Pitch

		if cfg.CheckHiddenFifths && !interval.IsPerfectFifth(prevInt) && interval.IsPerfectFifth(currInt) {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.HiddenFifths,
				Severity:    sev,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("Hidden fifths between %v and %v", pair[0], pair[1]),
				Suggestion:  "Approach the perfect fifth with contrary or oblique motion",
				Beat:        curr.Beat,
				NoteIDs:     []string{cu.NoteID, cl.NoteID},
				Interval:    intp(interval.Normalize(currInt)),
			})
		}
		if cfg.CheckHiddenOctaves && !interval.IsOctave(prevInt) && interval.IsOctave(currInt) {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.HiddenOctaves,
				Severity:    sev,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("Hidden octaves between %v and %v", pair[0], pair[1]),
				Suggestion:  "Approach the octave with contrary or oblique motion",
				Beat:        curr.Beat,
				NoteIDs:     []string{cu.NoteID, cl.NoteID},
				Interval:    intp(interval.Normalize(currInt)),
			})
		}
	}
	return res
}
