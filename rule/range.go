package rule

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
)

// Ranges checks every non-rest note of every enabled voice against the
// static range table. It runs per note, independent of snapshots.
// Pitches exactly on a bound are fine.
func Ranges(lines model.VoiceLines, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckRange {
		return res
	}

	for _, part := range voice.EnabledParts(lines) {
		profile, ok := voice.Profile(part)
		if !ok {
			continue
		}
		for _, n := range lines[part].Notes {
			if n.IsRest {
				continue
			}
			if v, ok := rangeViolation(part, n, profile, cfg); ok {
				res = append(res, v)
			}
		}
	}
	return res
}

func rangeViolation(part model.VoicePart, n model.MelodicNote, p voice.RangeProfile, cfg model.AnalyzerConfig) (model.Violation, bool) {
	v := model.Violation{
		ID:      newID(),
		Type:    model.RangeViolation,
		Voice:   part,
		Beat:    n.StartBeat,
		NoteIDs: []string{n.ID},
	}

	switch {
	case n.Pitch < p.AbsoluteLow:
		v.Severity = model.SeverityError
		v.Subtype = model.BelowAbsolute
		v.Description = fmt.Sprintf("Note below the absolute %v range", part)
		v.Suggestion = fmt.Sprintf("Raise the note to at least MIDI %v or reassign it to a lower voice", p.AbsoluteLow)
	case n.Pitch > p.AbsoluteHigh:
		v.Severity = model.SeverityError
		v.Subtype = model.AboveAbsolute
		v.Description = fmt.Sprintf("Note above the absolute %v range", part)
		v.Suggestion = fmt.Sprintf("Lower the note to at most MIDI %v or reassign it to a higher voice", p.AbsoluteHigh)
	case cfg.CheckComfortableRange && n.Pitch < p.ComfortableLow:
		v.Severity = model.SeverityWarning
		v.Subtype = model.BelowComfortable
		v.Description = fmt.Sprintf("Note below the comfortable %v range", part)
		v.Suggestion = "Consider raising the note; sustained singing this low strains the voice"
	case cfg.CheckComfortableRange && n.Pitch > p.ComfortableHigh:
		v.Severity = model.SeverityWarning
		v.Subtype = model.AboveComfortable
		v.Description = fmt.Sprintf("Note above the comfortable %v range", part)
		v.Suggestion = "Consider lowering the note; sustained singing this high strains the voice"
	default:
		return model.Violation{}, false
	}
	return v, true
}
