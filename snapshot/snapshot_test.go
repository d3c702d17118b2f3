package snapshot

import (
	"testing"

	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
	"github.com/stretchr/testify/assert"
)

func note(id string, pitch int, start, dur float64) model.MelodicNote {
	return model.MelodicNote{ID: id, Pitch: pitch, StartBeat: start, Duration: dur}
}

func line(notes ...model.MelodicNote) model.VoiceLine {
	return model.VoiceLine{Notes: notes, Enabled: true}
}

func TestBuildsOneSnapshotPerBoundaryBeat(t *testing.T) {
	lines := model.VoiceLines{
		voice.Soprano: line(note("s1", 72, 0, 2), note("s2", 74, 2, 2)),
		voice.Bass:    line(note("b1", 60, 0, 1), note("b2", 62, 1, 3)),
	}
	snaps := Build(lines)

	assert := assert.New(t)
	assert.Len(snaps, 4)
	assert.Equal(0.0, snaps[0].Beat)
	assert.Equal(1.0, snaps[1].Beat)
	assert.Equal(2.0, snaps[2].Beat)
	assert.Equal(4.0, snaps[3].Beat)

	// beat 1 falls inside s1 and starts b2
	assert.Equal(model.SoundingNote{NoteID: "s1", Pitch: 72}, snaps[1].Voices[voice.Soprano])
	assert.Equal(model.SoundingNote{NoteID: "b2", Pitch: 62}, snaps[1].Voices[voice.Bass])

	// final boundary beat has no sounding notes
	assert.Empty(snaps[3].Voices)
}

func TestVoicePresentIffNoteContainsBeat(t *testing.T) {
	lines := model.VoiceLines{
		voice.Soprano: line(note("s1", 72, 0, 1), note("s2", 74, 3, 1)),
		voice.Bass:    line(note("b1", 60, 0, 4)),
	}
	snaps := Build(lines)

	assert := assert.New(t)
	for _, s := range snaps {
		for part, sn := range s.Voices {
			found := false
			for _, n := range lines[part].Notes {
				if n.ID == sn.NoteID {
					found = true
					assert.GreaterOrEqual(s.Beat, n.StartBeat)
					assert.Less(s.Beat, n.StartBeat+n.Duration)
				}
			}
			assert.True(found)
		}
	}

	// soprano has a gap at beat 1
	assert.Equal(1.0, snaps[1].Beat)
	_, ok := snaps[1].Voices[voice.Soprano]
	assert.False(ok)
}

func TestDisabledVoiceContributesNothing(t *testing.T) {
	lines := model.VoiceLines{
		voice.Soprano: line(note("s1", 72, 0, 1)),
		voice.Bass:    {Notes: []model.MelodicNote{note("b1", 60, 5, 1)}, Enabled: false},
	}
	snaps := Build(lines)

	assert := assert.New(t)
	assert.Len(snaps, 2)
	for _, s := range snaps {
		_, ok := s.Voices[voice.Bass]
		assert.False(ok)
	}
}

func TestRestsMarkBoundariesButNeverSound(t *testing.T) {
	rest := model.MelodicNote{ID: "r1", StartBeat: 1, Duration: 1, IsRest: true}
	lines := model.VoiceLines{
		voice.Soprano: line(note("s1", 72, 0, 1), rest, note("s2", 74, 2, 1)),
	}
	snaps := Build(lines)

	assert := assert.New(t)
	assert.Len(snaps, 4)
	_, ok := snaps[1].Voices[voice.Soprano]
	assert.False(ok)
	assert.Equal("s2", snaps[2].Voices[voice.Soprano].NoteID)
}

func TestDuplicateBoundariesAreDeduplicated(t *testing.T) {
	lines := model.VoiceLines{
		voice.Soprano: line(note("s1", 72, 0, 1), note("s2", 74, 1, 1)),
		voice.Bass:    line(note("b1", 60, 0, 1), note("b2", 62, 1, 1)),
	}
	snaps := Build(lines)

	assert := assert.New(t)
	assert.Len(snaps, 3)
}
