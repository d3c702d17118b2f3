// Package rule holds the violation detectors. Every detector is a pure
// function over one or two adjacent beat snapshots plus configuration;
// a voice or pair missing from a snapshot silently skips that check.
package rule

import (
	"github.com/google/uuid"
	"github.com/harmoniccanvas/voicecheck/model"
)

// pairNotes looks up both members of a pair in a snapshot.
func pairNotes(s model.BeatSnapshot, pair [2]model.VoicePart) (model.SoundingNote, model.SoundingNote, bool) {
	upper, ok := s.Voices[pair[0]]
	if !ok {
		return model.SoundingNote{}, model.SoundingNote{}, false
	}
	lower, ok := s.Voices[pair[1]]
	if !ok {
		return model.SoundingNote{}, model.SoundingNote{}, false
	}
	return upper, lower, true
}

func newID() string {
	return uuid.New().String()
}

func intp(n int) *int {
	return &n
}
