// Package analyze sequences snapshot building, the detectors, and
// summary scoring into one deterministic, stateless pass. Inputs are
// never mutated; every result is a fresh value.
package analyze

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harmoniccanvas/voicecheck/config"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/rule"
	"github.com/harmoniccanvas/voicecheck/snapshot"
	"github.com/harmoniccanvas/voicecheck/voice"
)

// Run analyzes the full score with the overlay merged onto defaults.
func Run(lines model.VoiceLines, overlay *model.ConfigOverlay) model.AnalysisResult {
	return RunMerged(lines, config.Merge(config.Default(), overlay))
}

// RunRange analyzes only notes starting within [start, end).
func RunRange(lines model.VoiceLines, overlay *model.ConfigOverlay, start, end float64) model.AnalysisResult {
	return RunRangeMerged(lines, config.Merge(config.Default(), overlay), start, end)
}

// RunMerged is for callers that compose their own effective config,
// e.g. a preset overlay followed by a user overlay.
func RunMerged(lines model.VoiceLines, cfg model.AnalyzerConfig) model.AnalysisResult {
	return run(lines, cfg)
}

func RunRangeMerged(lines model.VoiceLines, cfg model.AnalyzerConfig, start, end float64) model.AnalysisResult {
	return run(filterRange(lines, start, end), cfg)
}

// filterRange pre-filters each voice's notes to [start, end); the
// pipeline afterwards is identical to a full run.
func filterRange(lines model.VoiceLines, start, end float64) model.VoiceLines {
	res := make(model.VoiceLines, len(lines))
	for part, line := range lines {
		filtered := model.VoiceLine{Enabled: line.Enabled}
		for _, n := range line.Notes {
			if start <= n.StartBeat && n.StartBeat < end {
				filtered.Notes = append(filtered.Notes, n)
			}
		}
		res[part] = filtered
	}
	return res
}

func run(lines model.VoiceLines, cfg model.AnalyzerConfig) model.AnalysisResult {
	parts := voice.EnabledParts(lines)
	snaps := snapshot.Build(lines)

	violations := make([]model.Violation, 0)
	for _, s := range snaps {
		violations = append(violations, rule.Crossings(s, parts, cfg)...)
		violations = append(violations, rule.Spacing(s, parts, cfg)...)
	}
	for i := 1; i < len(snaps); i++ {
		prev, curr := snaps[i-1], snaps[i]
		violations = append(violations, rule.Parallels(prev, curr, parts, cfg)...)
		violations = append(violations, rule.Antiparallels(prev, curr, parts, cfg)...)
		violations = append(violations, rule.Hiddens(prev, curr, parts, cfg)...)
		violations = append(violations, rule.Dissonances(prev, curr, parts, cfg)...)
		violations = append(violations, rule.Overlaps(prev, curr, parts, cfg)...)
	}
	violations = append(violations, rule.Ranges(lines, cfg)...)

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Beat < violations[j].Beat
	})

	return model.AnalysisResult{
		ID:         uuid.New().String(),
		Violations: violations,
		Summary:    summarize(violations),
		AnalyzedAt: time.Now().UTC().Format(time.RFC3339),
		Config:     cfg,
	}
}
