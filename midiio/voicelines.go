package midiio

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/voice"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEvent struct {
	ticks     int64
	isNoteOff bool
	key       uint8
}

// VoiceLines converts each note-bearing track into one voice line,
// tracks assigned to parts high-to-low in file order. Ticks scale to
// beats by the file's metric resolution.
func VoiceLines(s *smf.SMF) model.VoiceLines {
	tpq := 960.0
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		tpq = float64(mt.Resolution())
	}

	var trackNotes [][]model.MelodicNote
	for ti, track := range s.Tracks {
		events := reduceTrack(track)
		notes := buildNotes(events, tpq, ti)
		if len(notes) > 0 {
			trackNotes = append(trackNotes, notes)
		}
	}

	parts := partsFor(len(trackNotes))
	lines := make(model.VoiceLines, len(trackNotes))
	for i, notes := range trackNotes {
		if i >= len(parts) {
			break
		}
		lines[parts[i]] = model.VoiceLine{Notes: notes, Enabled: true}
	}
	return lines
}

func reduceTrack(track smf.Track) []noteEvent {
	var res []noteEvent
	var absTicks int64
	for _, event := range track {
		absTicks += int64(event.Delta)
		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			// velocity 0 note-on is a note-off in disguise
			res = append(res, noteEvent{absTicks, velocity == 0, key})
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			res = append(res, noteEvent{absTicks, true, key})
		}
	}
	return res
}

// buildNotes pairs note on/off events into melodic notes. Voices are
// assumed monophonic; a re-struck key restarts the note.
func buildNotes(events []noteEvent, tpq float64, trackNum int) []model.MelodicNote {
	var res []model.MelodicNote
	pressed := make(map[uint8]int64)
	for _, evt := range events {
		if evt.isNoteOff {
			start, ok := pressed[evt.key]
			if !ok {
				continue
			}
			delete(pressed, evt.key)
			res = append(res, model.MelodicNote{
				ID:        fmt.Sprintf("t%v-n%v", trackNum, len(res)),
				Pitch:     int(evt.key),
				StartBeat: float64(start) / tpq,
				Duration:  float64(evt.ticks-start) / tpq,
			})
		} else {
			pressed[evt.key] = evt.ticks
		}
	}
	return res
}

// partsFor spreads n tracks across the classic registers rather than
// always starting from the top of the canonical order.
func partsFor(n int) []model.VoicePart {
	switch n {
	case 1:
		return []model.VoicePart{voice.Soprano}
	case 2:
		return []model.VoicePart{voice.Soprano, voice.Bass}
	case 3:
		return []model.VoicePart{voice.Soprano, voice.Alto, voice.Bass}
	case 4:
		return []model.VoicePart{voice.Soprano, voice.Alto, voice.Tenor, voice.Bass}
	default:
		if n > len(voice.Order) {
			n = len(voice.Order)
		}
		return voice.Order[:n]
	}
}
