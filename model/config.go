package model

type Strictness string

const (
	StrictnessRelaxed Strictness = "relaxed"
	StrictnessNormal  Strictness = "normal"
	StrictnessStrict  Strictness = "strict"
)

// AnalyzerConfig is always fully populated; callers supply partial
// ConfigOverlay values that get merged onto the defaults.
type AnalyzerConfig struct {
	CheckParallelFifths       bool       `json:"checkParallelFifths"`
	CheckParallelOctaves      bool       `json:"checkParallelOctaves"`
	CheckAntiparallelFifths   bool       `json:"checkAntiparallelFifths"`
	CheckAntiparallelOctaves  bool       `json:"checkAntiparallelOctaves"`
	CheckHiddenFifths         bool       `json:"checkHiddenFifths"`
	CheckHiddenOctaves        bool       `json:"checkHiddenOctaves"`
	CheckVoiceCrossing        bool       `json:"checkVoiceCrossing"`
	CheckVoiceOverlap         bool       `json:"checkVoiceOverlap"`
	CheckSpacing              bool       `json:"checkSpacing"`
	CheckRange                bool       `json:"checkRange"`
	CheckComfortableRange     bool       `json:"checkComfortableRange"`
	CheckDissonanceResolution bool       `json:"checkDissonanceResolution"`
	MaxUpperSpacing           int        `json:"maxUpperSpacing"`
	MaxInnerSpacing           int        `json:"maxInnerSpacing"`
	Strictness                Strictness `json:"strictness"`
	Style                     string     `json:"style"`
}

// ConfigOverlay is a partial AnalyzerConfig; nil fields keep the value
// being overlaid.
type ConfigOverlay struct {
	CheckParallelFifths       *bool       `json:"checkParallelFifths,omitempty"`
	CheckParallelOctaves      *bool       `json:"checkParallelOctaves,omitempty"`
	CheckAntiparallelFifths   *bool       `json:"checkAntiparallelFifths,omitempty"`
	CheckAntiparallelOctaves  *bool       `json:"checkAntiparallelOctaves,omitempty"`
	CheckHiddenFifths         *bool       `json:"checkHiddenFifths,omitempty"`
	CheckHiddenOctaves        *bool       `json:"checkHiddenOctaves,omitempty"`
	CheckVoiceCrossing        *bool       `json:"checkVoiceCrossing,omitempty"`
	CheckVoiceOverlap         *bool       `json:"checkVoiceOverlap,omitempty"`
	CheckSpacing              *bool       `json:"checkSpacing,omitempty"`
	CheckRange                *bool       `json:"checkRange,omitempty"`
	CheckComfortableRange     *bool       `json:"checkComfortableRange,omitempty"`
	CheckDissonanceResolution *bool       `json:"checkDissonanceResolution,omitempty"`
	MaxUpperSpacing           *int        `json:"maxUpperSpacing,omitempty"`
	MaxInnerSpacing           *int        `json:"maxInnerSpacing,omitempty"`
	Strictness                *Strictness `json:"strictness,omitempty"`
	Style                     *string     `json:"style,omitempty"`
}
