package voice

import "github.com/harmoniccanvas/voicecheck/model"

// RangeProfile gives the absolute and comfortable pitch bounds for a
// part, in MIDI semitones, inclusive on both ends.
type RangeProfile struct {
	AbsoluteLow     int
	AbsoluteHigh    int
	ComfortableLow  int
	ComfortableHigh int
}

// Ranges is the static per-part range table. The engine consults it
// but does not own it; values follow standard choral writing.
var Ranges = map[model.VoicePart]RangeProfile{
	Descant:    {65, 89, 67, 84},
	Soprano:    {60, 84, 62, 79},
	Mezzo:      {57, 81, 59, 77},
	Alto:       {53, 77, 55, 74},
	Tenor:      {48, 72, 52, 69},
	Baritone:   {45, 69, 47, 65},
	Bass:       {40, 64, 43, 60},
	Contrabass: {33, 57, 36, 55},
}

func Profile(p model.VoicePart) (RangeProfile, bool) {
	r, ok := Ranges[p]
	return r, ok
}
