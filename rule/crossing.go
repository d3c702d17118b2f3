package rule

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
)

// Crossings flags a conventionally-lower voice sounding above its
// upper neighbor at one beat. Adjacent pairs only.
func Crossings(s model.BeatSnapshot, parts []model.VoicePart, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckVoiceCrossing {
		return res
	}

	for _, pair := range voice.AdjacentPairs(parts) {
		upper, lower, ok := pairNotes(s, pair)
		if !ok {
			continue
		}
		if lower.Pitch > upper.Pitch {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.VoiceCrossing,
				Severity:    model.SeverityWarning,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("%v crosses above %v", pair[1], pair[0]),
				Suggestion:  "Keep each voice within its conventional position relative to its neighbors",
				Beat:        s.Beat,
				NoteIDs:     []string{upper.NoteID, lower.NoteID},
			})
		}
	}
	return res
}

// Overlaps flags a voice moving past the pitch its adjacent neighbor
// held at the previous beat.
func Overlaps(prev, curr model.BeatSnapshot, parts []model.VoicePart, cfg model.AnalyzerConfig) []model.Violation {
	var res []model.Violation
	if !cfg.CheckVoiceOverlap {
		return res
	}

	for _, pair := range voice.AdjacentPairs(parts) {
		pu, pl, ok := pairNotes(prev, pair)
		if !ok {
			continue
		}
		cu, cl, ok := pairNotes(curr, pair)
		if !ok {
			continue
		}

		// upper voice moves below where the lower voice just was
		if cu.Pitch != pu.Pitch && cu.Pitch < pl.Pitch {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.VoiceOverlap,
				Severity:    model.SeverityInfo,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("%v overlaps below the previous %v pitch", pair[0], pair[1]),
				Suggestion:  "Keep the moving voice on its own side of the pitch the neighbor vacated",
				Beat:        curr.Beat,
				NoteIDs:     []string{cu.NoteID, pl.NoteID},
			})
		}
		// lower voice moves above where the upper voice just was
		if cl.Pitch != pl.Pitch && cl.Pitch > pu.Pitch {
			res = append(res, model.Violation{
				ID:          newID(),
				Type:        model.VoiceOverlap,
				Severity:    model.SeverityInfo,
				Voices:      []model.VoicePart{pair[0], pair[1]},
				Description: fmt.Sprintf("%v overlaps above the previous %v pitch", pair[1], pair[0]),
				Suggestion:  "Keep the moving voice on its own side of the pitch the neighbor vacated",
				Beat:        curr.Beat,
				NoteIDs:     []string{cl.NoteID, pu.NoteID},
			})
		}
	}
	return res
}
