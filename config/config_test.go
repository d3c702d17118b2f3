package config

import (
	"testing"

	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/stretchr/testify/assert"
)

func TestDefaultIsCommonPractice(t *testing.T) {
	cfg := Default()

	assert := assert.New(t)
	assert.True(cfg.CheckParallelFifths)
	assert.True(cfg.CheckParallelOctaves)
	assert.True(cfg.CheckHiddenFifths)
	assert.True(cfg.CheckHiddenOctaves)
	assert.True(cfg.CheckVoiceCrossing)
	assert.True(cfg.CheckVoiceOverlap)
	assert.True(cfg.CheckSpacing)
	assert.True(cfg.CheckRange)
	assert.False(cfg.CheckAntiparallelFifths)
	assert.False(cfg.CheckAntiparallelOctaves)
	assert.False(cfg.CheckDissonanceResolution)
	assert.Equal(12, cfg.MaxUpperSpacing)
	assert.Equal(12, cfg.MaxInnerSpacing)
	assert.Equal(model.StrictnessNormal, cfg.Strictness)
	assert.Equal("commonPractice", cfg.Style)
}

func TestMergeAppliesOnlySetFields(t *testing.T) {
	off := false
	strict := model.StrictnessStrict
	overlay := model.ConfigOverlay{
		CheckParallelFifths: &off,
		Strictness:          &strict,
	}

	merged := Merge(Default(), &overlay)

	assert := assert.New(t)
	assert.False(merged.CheckParallelFifths)
	assert.Equal(model.StrictnessStrict, merged.Strictness)
	// untouched fields keep their defaults
	assert.True(merged.CheckParallelOctaves)
	assert.Equal(12, merged.MaxUpperSpacing)
}

func TestMergeNeverMutatesTheDefaults(t *testing.T) {
	off := false
	narrow := 7
	overlay := model.ConfigOverlay{
		CheckParallelFifths: &off,
		MaxUpperSpacing:     &narrow,
	}
	Merge(Default(), &overlay)

	assert := assert.New(t)
	assert.True(Default().CheckParallelFifths)
	assert.Equal(12, Default().MaxUpperSpacing)
}

func TestMergeWithNilOverlayIsIdentity(t *testing.T) {
	assert.Equal(t, Default(), Merge(Default(), nil))
}

func TestRenaissancePresetIsStrictest(t *testing.T) {
	p, ok := Preset("renaissance")

	assert := assert.New(t)
	assert.True(ok)

	cfg := Merge(Default(), &p)
	assert.True(cfg.CheckAntiparallelFifths)
	assert.True(cfg.CheckAntiparallelOctaves)
	assert.True(cfg.CheckDissonanceResolution)
	assert.Equal(model.StrictnessStrict, cfg.Strictness)
	// everything the defaults enable stays on
	assert.True(cfg.CheckParallelFifths)
	assert.True(cfg.CheckHiddenFifths)
}

func TestJazzPresetIsMostRelaxed(t *testing.T) {
	p, ok := Preset("jazz")

	assert := assert.New(t)
	assert.True(ok)

	cfg := Merge(Default(), &p)
	assert.False(cfg.CheckHiddenFifths)
	assert.False(cfg.CheckHiddenOctaves)
	assert.False(cfg.CheckVoiceOverlap)
	assert.Equal(model.StrictnessRelaxed, cfg.Strictness)
	// parallels still matter even in jazz voicing exercises
	assert.True(cfg.CheckParallelFifths)
}

func TestUnknownPresetReportsMissing(t *testing.T) {
	_, ok := Preset("serialism")
	assert.False(t, ok)
}
