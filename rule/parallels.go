package rule

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/interval"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
)

// Parallels flags perfect fifths/octaves held across a beat transition
// while both voices move in the same direction.
func Parallels(prev, curr model.BeatSnapshot, parts []model.VoicePart, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckParallelFifths && !cfg.CheckParallelOctaves {
		return res
	}

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

		prevInt := pu.Pitch - pl.Pitch
		currInt := cu.Pitch - cl.Pitch

		if cfg.CheckParallelFifths && interval.IsPerfectFifth(prevInt) && interval.IsPerfectFifth(currInt) {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.ParallelFifths,
				Severity:    model.SeverityError,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("Parallel fifths between %v and %v", pair[0], pair[1]),
				Suggestion:  "Move the voices in contrary or oblique motion, or change one voice to an imperfect interval",
				Beat:        curr.Beat,
				NoteIDs:     []string{cu.NoteID, cl.NoteID},
				Interval:    intp(interval.Normalize(currInt)),
			})
		}
		if cfg.CheckParallelOctaves && interval.IsOctave(prevInt) && interval.IsOctave(currInt) {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.ParallelOctaves,
				Severity:    model.SeverityError,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("Parallel octaves between %v and %v", pair[0], pair[1]),
				Suggestion:  "Move the voices in contrary or oblique motion, or give one voice independent material",
				Beat:        curr.Beat,
				NoteIDs:     []string{cu.NoteID, cl.NoteID},
				Interval:    intp(interval.Normalize(currInt)),
			})
		}
	}
	return res
}

// Antiparallels flags the same perfect-to-perfect transitions reached
// by contrary motion. Off by default; strict styles treat it as an
// error.
func Antiparallels(prev, curr model.BeatSnapshot, parts []model.VoicePart, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckAntiparallelFifths && !cfg.CheckAntiparallelOctaves {
		return res
	}
	sev := severityFor(antiparallelSeverity, cfg.Strictness)

	for _, pair := range voice.Pairs(parts) {
		pu, pl, ok := pairNotes(prev, pair)
		if !ok {
			continue
		}
		cu, cl, ok := pairNotes(curr, pair)
		if !ok {
			continue
		}
		if interval.ClassifyMotion(pu.Pitch, cu.Pitch, pl.Pitch, cl.Pitch) != interval.Contrary {
			continue
		}

		prevInt := pu.Pitch - pl.Pitch
		currInt := cu.Pitch - cl.Pitch

		if cfg.CheckAntiparallelFifths && interval.IsPerfectFifth(prevInt) && interval.IsPerfectFifth(currInt) {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.AntiparallelFifths,
				Severity:    sev,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("Antiparallel fifths between %v and %v", pair[0], pair[1]),
				Suggestion:  "Avoid arriving at another perfect fifth even by contrary motion",
				Beat:        curr.Beat,
				NoteIDs:     []string{cu.NoteID, cl.NoteID},
				Interval:    intp(interval.Normalize(currInt)),
			})
		}
		if cfg.CheckAntiparallelOctaves && interval.IsOctave(prevInt) && interval.IsOctave(currInt) {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.AntiparallelOctaves,
				Severity:    sev,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("Antiparallel octaves between %v and %v", pair[0], pair[1]),
				Suggestion:  "Avoid arriving at another octave even by contrary motion",
				Beat:        curr.Beat,
				NoteIDs:     []string{cu.NoteID, cl.NoteID},
				Interval:    intp(interval.Normalize(currInt)),
			})
		}
	}
	return res
}
