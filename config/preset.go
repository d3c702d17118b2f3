package config

import "github.com/harmoniccanvas/voicecheck/model"

// presets are partial overlays onto the common-practice defaults,
// ordered here from strictest to most relaxed.
var presets = map[string]model.ConfigOverlay{
	"renaissance": {
		CheckAntiparallelFifths:   boolp(true),
		CheckAntiparallelOctaves:  boolp(true),
		CheckDissonanceResolution: boolp(true),
		Strictness:                strictp(model.StrictnessStrict),
		Style:                     strp("renaissance"),
	},
	"baroque": {
		CheckDissonanceResolution: boolp(true),
		Strictness:                strictp(model.StrictnessStrict),
		Style:                     strp("baroque"),
	},
	"romantic": {
		CheckAntiparallelOctaves: boolp(true),
		Style:                    strp("romantic"),
	},
	"jazz": {
		CheckHiddenFifths:     boolp(false),
		CheckHiddenOctaves:    boolp(false),
		CheckVoiceOverlap:     boolp(false),
		CheckComfortableRange: boolp(false),
		Strictness:            strictp(model.StrictnessRelaxed),
		Style:                 strp("jazz"),
	},
}

func Preset(name string) (model.ConfigOverlay, bool) {
	p, ok := presets[name]
	return p, ok
}

func boolp(b bool) *bool { return &b }

func strp(s string) *string { return &s }

func strictp(s model.Strictness) *model.Strictness { return &s }
