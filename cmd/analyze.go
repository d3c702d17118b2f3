package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/harmoniccanvas/voicecheck/analyze"
	"github.com/harmoniccanvas/voicecheck/config"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/spf13/cobra"
)

var (
	analyzePreset string
	analyzeStart  float64
	analyzeEnd    float64
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzePreset, "preset", "", "style preset overlay (renaissance, baroque, romantic, jazz)")
	analyzeCmd.Flags().Float64Var(&analyzeStart, "start", 0, "start beat (inclusive)")
	analyzeCmd.Flags().Float64Var(&analyzeEnd, "end", 0, "end beat (exclusive)")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <score.json>",
	Short: "Analyzes a score file",
	Long:  `Analyzes a JSON score file and prints the result`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			panic("Could not read score file: " + err.Error())
		}

		var score model.AnalyzeRequestBody
		if err := json.Unmarshal(data, &score); err != nil {
			panic("Could not parse score file: " + err.Error())
		}

		preset := score.Preset
		if analyzePreset != "" {
			preset = analyzePreset
		}
		cfg, err := resolveConfig(preset, score.Config)
		if err != nil {
			panic(err.Error())
		}

		var res model.AnalysisResult
		if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
			res = analyze.RunRangeMerged(score.Voices, cfg, analyzeStart, analyzeEnd)
		} else {
			res = analyze.RunMerged(score.Voices, cfg)
		}

		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			panic("Could not marshal result: " + err.Error())
		}
		fmt.Println(string(out))
	},
}

// resolveConfig layers an optional named preset and an optional user
// overlay onto the defaults.
func resolveConfig(preset string, overlay *model.ConfigOverlay) (model.AnalyzerConfig, error) {
	cfg := config.Default()
	if preset != "" {
		p, ok := config.Preset(preset)
		if !ok {
			return cfg, fmt.Errorf("unknown preset: %v", preset)
		}
		cfg = config.Merge(cfg, &p)
	}
	return config.Merge(cfg, overlay), nil
}
