package model

// SoundingNote is one voice's contribution to a snapshot.
type SoundingNote struct {
	NoteID string `json:"noteId"`
	Pitch  int    `json:"pitch"`
}

// BeatSnapshot maps the voices sounding at one beat to their pitches.
// A voice is present iff one of its non-rest notes contains the beat.
type BeatSnapshot struct {
	Beat   float64                    `json:"beat"`
	Voices map[VoicePart]SoundingNote `json:"voices"`
}
