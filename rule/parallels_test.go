package rule

import (
	"fmt"
	"testing"

	"github.com/harmoniccanvas/voicecheck/config"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
	"github.com/stretchr/testify/assert"
)

func snapAt(beat float64, pitches map[model.VoicePart]int) model.BeatSnapshot {
	s := model.BeatSnapshot{Beat: beat, Voices: make(map[model.VoicePart]model.SoundingNote)}
	for p, pitch := range pitches {
		s.Voices[p] = model.SoundingNote{NoteID: fmt.Sprintf("%v@%v", p, beat), Pitch: pitch}
	}
	return s
}

func TestParallelOctavesSopranoAgainstBass(t *testing.T) {
	// soprano C5->D5 over bass C4->D4, octave at both beats
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72, voice.Bass: 60})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 74, voice.Bass: 62})
	parts := []model.VoicePart{voice.Soprano, voice.Bass}

	got := Parallels(prev, curr, parts, config.Default())

	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal(model.ParallelOctaves, got[0].Type)
	assert.Equal(model.SeverityError, got[0].Severity)
	assert.Equal([]model.VoicePart{voice.Soprano, voice.Bass}, got[0].Voices)
	assert.Equal(1.0, got[0].Beat)
	assert.Equal([]string{"soprano@1", "bass@1"}, got[0].NoteIDs)
}

func TestParallelFifthsSopranoAgainstAlto(t *testing.T) {
	// soprano C5->D5 over alto F4->G4, fifth at both beats
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72, voice.Alto: 65})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 74, voice.Alto: 67})
	parts := []model.VoicePart{voice.Soprano, voice.Alto}

	got := Parallels(prev, curr, parts, config.Default())

	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal(model.ParallelFifths, got[0].Type)
	assert.Equal(model.SeverityError, got[0].Severity)
	assert.Equal(7, *got[0].Interval)
}

func TestNoParallelWhenMotionIsContrary(t *testing.T) {
	// fifths at both beats, but the voices diverge
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72, voice.Alto: 65})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 77, voice.Alto: 58})

	got := Parallels(prev, curr, []model.VoicePart{voice.Soprano, voice.Alto}, config.Default())
	assert.Empty(t, got)
}

func TestNoParallelWhenOneVoiceIsStatic(t *testing.T) {
	// a held octave is oblique, not parallel
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72, voice.Bass: 60})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 72, voice.Bass: 60})

	got := Parallels(prev, curr, []model.VoicePart{voice.Soprano, voice.Bass}, config.Default())
	assert.Empty(t, got)
}

func TestParallelsSkipPairsMissingFromEitherSnapshot(t *testing.T) {
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 74, voice.Bass: 62})

	got := Parallels(prev, curr, []model.VoicePart{voice.Soprano, voice.Bass}, config.Default())
	assert.Empty(t, got)
}

func TestAntiparallelOctavesOffByDefault(t *testing.T) {
	// octave to octave by contrary motion
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72, voice.Bass: 60})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 79, voice.Bass: 55})
	parts := []model.VoicePart{voice.Soprano, voice.Bass}

	assert := assert.New(t)
	assert.Empty(Antiparallels(prev, curr, parts, config.Default()))

	cfg := config.Default()
	cfg.CheckAntiparallelOctaves = true
	got := Antiparallels(prev, curr, parts, cfg)
	assert.Len(got, 1)
	assert.Equal(model.AntiparallelOctaves, got[0].Type)
	assert.Equal(model.SeverityWarning, got[0].Severity)
}

func TestAntiparallelFifthsAreErrorsUnderStrictStyle(t *testing.T) {
	// fifth to fifth by contrary motion
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72, voice.Alto: 65})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 76, voice.Alto: 57})
	parts := []model.VoicePart{voice.Soprano, voice.Alto}

	cfg := config.Default()
	cfg.CheckAntiparallelFifths = true
	cfg.Strictness = model.StrictnessStrict

	got := Antiparallels(prev, curr, parts, cfg)

	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal(model.AntiparallelFifths, got[0].Type)
	assert.Equal(model.SeverityError, got[0].Severity)
}
