package model

// VoicePart names one melodic line in a multi-voice texture.
type VoicePart string

// MelodicNote is one note (or rest) in a voice line. Pitch is an
// absolute MIDI semitone value. Beats are fractional.
type MelodicNote struct {
	ID        string  `json:"id"`
	Pitch     int     `json:"pitch"`
	StartBeat float64 `json:"startBeat"`
	Duration  float64 `json:"duration"`
	IsRest    bool    `json:"isRest,omitempty"`
}

// VoiceLine holds one part's notes. Notes must already be ordered
// ascending by StartBeat; the engine does not verify or re-sort.
type VoiceLine struct {
	Notes   []MelodicNote `json:"notes"`
	Enabled bool          `json:"enabled"`
}

type VoiceLines = map[VoicePart]VoiceLine
