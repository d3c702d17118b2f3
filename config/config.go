package config

import "github.com/harmoniccanvas/voicecheck/model"

// defaults is the common-practice rule set. Never handed out directly;
// Default returns a copy so callers can't mutate shared state.
var defaults = model.AnalyzerConfig{
	CheckParallelFifths:       true,
	CheckParallelOctaves:      true,
	CheckAntiparallelFifths:   false,
	CheckAntiparallelOctaves:  false,
	CheckHiddenFifths:         true,
	CheckHiddenOctaves:        true,
	CheckVoiceCrossing:        true,
	CheckVoiceOverlap:         true,
	CheckSpacing:              true,
	CheckRange:                true,
	CheckComfortableRange:     true,
	CheckDissonanceResolution: false,
	MaxUpperSpacing:           12,
	MaxInnerSpacing:           12,
	Strictness:                model.StrictnessNormal,
	Style:                     "commonPractice",
}

func Default() model.AnalyzerConfig {
	return defaults
}

// Merge applies a partial overlay onto base and returns the result.
// Neither input is mutated.
func Merge(base model.AnalyzerConfig, overlay *model.ConfigOverlay) model.AnalyzerConfig {
	if overlay == nil {
		return base
	}
	res := base
	if overlay.CheckParallelFifths != nil {
		res.CheckParallelFifths = *overlay.CheckParallelFifths
	}
	if overlay.CheckParallelOctaves != nil {
		res.CheckParallelOctaves = *overlay.CheckParallelOctaves
	}
	if overlay.CheckAntiparallelFifths != nil {
		res.CheckAntiparallelFifths = *overlay.CheckAntiparallelFifths
	}
	if overlay.CheckAntiparallelOctaves != nil {
		res.CheckAntiparallelOctaves = *overlay.CheckAntiparallelOctaves
	}
	if overlay.CheckHiddenFifths != nil {
		res.CheckHiddenFifths = *overlay.CheckHiddenFifths
	}
	if overlay.CheckHiddenOctaves != nil {
		res.CheckHiddenOctaves = *overlay.CheckHiddenOctaves
	}
	if overlay.CheckVoiceCrossing != nil {
		res.CheckVoiceCrossing = *overlay.CheckVoiceCrossing
	}
	if overlay.CheckVoiceOverlap != nil {
		res.CheckVoiceOverlap = *overlay.CheckVoiceOverlap
	}
	if overlay.CheckSpacing != nil {
		res.CheckSpacing = *overlay.CheckSpacing
	}
	if overlay.CheckRange != nil {
		res.CheckRange = *overlay.CheckRange
	}
	if overlay.CheckComfortableRange != nil {
		res.CheckComfortableRange = *overlay.CheckComfortableRange
	}
	if overlay.CheckDissonanceResolution != nil {
		res.CheckDissonanceResolution = *overlay.CheckDissonanceResolution
	}
	if overlay.MaxUpperSpacing != nil {
		res.MaxUpperSpacing = *overlay.MaxUpperSpacing
	}
	if overlay.MaxInnerSpacing != nil {
		res.MaxInnerSpacing = *overlay.MaxInnerSpacing
	}
	if overlay.Strictness != nil {
		res.Strictness = *overlay.Strictness
	}
	if overlay.Style != nil {
		res.Style = *overlay.Style
	}
	return res
}
