package rule

import (
	"testing"

	"github.com/harmoniccanvas/voicecheck/config"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
	"github.com/stretchr/testify/assert"
)

func TestTenorAboveAltoIsACrossing(t *testing.T) {
	s := snapAt(2, map[model.VoicePart]int{
		voice.Soprano: 72, voice.Alto: 60, voice.Tenor: 64, voice.Bass: 48,
	})
	parts := []model.VoicePart{voice.Soprano, voice.Alto, voice.Tenor, voice.Bass}

	got := Crossings(s, parts, config.Default())

	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal(model.VoiceCrossing, got[0].Type)
	assert.Equal(model.SeverityWarning, got[0].Severity)
	assert.Equal([]model.VoicePart{voice.Alto, voice.Tenor}, got[0].Voices)
	assert.Equal(2.0, got[0].Beat)
}

func TestEqualPitchesDoNotCross(t *testing.T) {
	s := snapAt(0, map[model.VoicePart]int{voice.Alto: 60, voice.Tenor: 60})

	got := Crossings(s, []model.VoicePart{voice.Alto, voice.Tenor}, config.Default())
	assert.Empty(t, got)
}

func TestCrossingSkipsAbsentVoices(t *testing.T) {
	s := snapAt(0, map[model.VoicePart]int{voice.Alto: 60})

	got := Crossings(s, []model.VoicePart{voice.Alto, voice.Tenor}, config.Default())
	assert.Empty(t, got)
}

func TestUpperVoiceOverlappingBelowNeighborIsInfo(t *testing.T) {
	// soprano dips below where the alto just was
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 72, voice.Alto: 67})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 65, voice.Alto: 64})
	parts := []model.VoicePart{voice.Soprano, voice.Alto}

	got := Overlaps(prev, curr, parts, config.Default())

	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal(model.VoiceOverlap, got[0].Type)
	assert.Equal(model.SeverityInfo, got[0].Severity)
	assert.Equal([]model.VoicePart{voice.Soprano, voice.Alto}, got[0].Voices)
}

func TestLowerVoiceOverlappingAboveNeighborIsInfo(t *testing.T) {
	// tenor leaps above where the alto just was
	prev := snapAt(0, map[model.VoicePart]int{voice.Alto: 62, voice.Tenor: 57})
	curr := snapAt(1, map[model.VoicePart]int{voice.Alto: 65, voice.Tenor: 64})
	parts := []model.VoicePart{voice.Alto, voice.Tenor}

	got := Overlaps(prev, curr, parts, config.Default())

	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal(model.VoiceOverlap, got[0].Type)
}

func TestHeldVoicesNeverOverlap(t *testing.T) {
	prev := snapAt(0, map[model.VoicePart]int{voice.Soprano: 65, voice.Alto: 64})
	curr := snapAt(1, map[model.VoicePart]int{voice.Soprano: 65, voice.Alto: 64})
	parts := []model.VoicePart{voice.Soprano, voice.Alto}

	got := Overlaps(prev, curr, parts, config.Default())
	assert.Empty(t, got)
}
