package model

type AnalyzeRequestBody struct {
	Voices    VoiceLines     `json:"voices"`
	Config    *ConfigOverlay `json:"config,omitempty"`
	Preset    string         `json:"preset,omitempty"`
	StartBeat *float64       `json:"startBeat,omitempty"`
	EndBeat   *float64       `json:"endBeat,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
