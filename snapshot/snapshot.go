package snapshot

import (
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/util"
	"golang.org/x/exp/slices"
)

// noteAt finds the at-most-one sounding note whose
// [StartBeat, StartBeat+Duration) interval contains the beat.
func noteAt(line model.VoiceLine, beat float64) (model.SoundingNote, bool) {
	for _, n := range line.Notes {
		if n.IsRest {
			continue
		}
		if n.StartBeat <= beat && beat < n.StartBeat+n.Duration {
			return model.SoundingNote{NoteID: n.ID, Pitch: n.Pitch}, true
		}
	}
	return model.SoundingNote{}, false
}

// Build converts per-voice note lists into vertical slices, one per
// beat where any note starts or ends. Snapshots are never built by
// uniform time sampling. Disabled voices contribute nothing.
func Build(lines model.VoiceLines) []model.BeatSnapshot {
	boundaries := make(map[float64]bool)
	for _, line := range lines {
		if !line.Enabled {
			continue
		}
		for _, n := range line.Notes {
			boundaries[n.StartBeat] = true
			boundaries[n.StartBeat+n.Duration] = true
		}
	}

	beats := util.GetKeys(boundaries)
	slices.Sort(beats)

	res := make([]model.BeatSnapshot, 0, len(beats))
	for _, beat := range beats {
		s := model.BeatSnapshot{
			Beat:   beat,
			Voices: make(map[model.VoicePart]model.SoundingNote),
		}
		for part, line := range lines {
			if !line.Enabled {
				continue
			}
			if sn, ok := noteAt(line, beat); ok {
				s.Voices[part] = sn
			}
		}
		res = append(res, s)
	}
	return res
}
