package cmd

import (
	"fmt"

	"github.com/harmoniccanvas/voicecheck/analyze"
	"github.com/harmoniccanvas/voicecheck/midiio"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Analyzes a midi file",
	Long:  `Loads a midi file as voice lines and prints a violation report`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parsed, err := midiio.ReadMidiFile(args[0])
		if err != nil {
			panic("Could not read midi file: " + err.Error())
		}

		lines := midiio.VoiceLines(parsed)
		if len(lines) == 0 {
			fmt.Println("No note-bearing tracks found")
			return
		}

		res := analyze.Run(lines, nil)
		printReport(res)
	},
}

func printReport(res model.AnalysisResult) {
	s := res.Summary
	fmt.Printf("score: %v/100  valid: %v  (%v errors, %v warnings, %v info)\n",
		s.Score, s.IsValid,
		s.BySeverity[model.SeverityError],
		s.BySeverity[model.SeverityWarning],
		s.BySeverity[model.SeverityInfo])
	for _, v := range res.Violations {
		who := string(v.Voice)
		if len(v.Voices) == 2 {
			who = fmt.Sprintf("%v/%v", v.Voices[0], v.Voices[1])
		}
		fmt.Printf("beat %v [%v] %v (%v): %v\n", v.Beat, v.Severity, v.Type, who, v.Description)
	}
}
