package rule

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/interval"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
)

var resolutionSuggestions = map[interval.Dissonance]string{
	interval.Second:  "Resolve the second to a third or a unison",
	interval.Tritone: "Resolve the tritone inward to a third or outward to a sixth",
	interval.Seventh: "Resolve the seventh to a sixth or to an octave",
}

// Dissonances flags a dissonant interval whose next interval does not
// match that dissonance type's expected resolution.
func Dissonances(prev, curr model.BeatSnapshot, parts []model.VoicePart, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckDissonanceResolution {
		return res
	}
	sev := severityFor(dissonanceSeverity, cfg.Strictness)

	for _, pair := range voice.Pairs(parts) {
		pu, pl, ok := pairNotes(prev, pair)
		if !ok {
			continue
		}
		cu, cl, ok := pairNotes(curr, pair)
		if !ok {
			continue
		}

		d := interval.ClassifyDissonance(pu.Pitch - pl.Pitch)
		if d == interval.NotDissonant {
			continue
		}
		currInt := cu.Pitch - cl.Pitch
		if d.Resolves(currInt) {
			continue
		}

		res = append(res, model.Violation{
			ID:          newID(),
			Type:        model.UnresolvedDissonance,
			Severity:    sev,
			Voices:      []model.VoicePart{pair[0], pair[1]},
			Description: fmt.Sprintf("Unresolved %v between %v and %v", d, pair[0], pair[1]),
			Suggestion:  resolutionSuggestions[d],
			Beat:        curr.Beat,
			NoteIDs:     []string{cu.NoteID, cl.NoteID},
			Interval:    intp(interval.Normalize(currInt)),
		})
	}
	return res
}
