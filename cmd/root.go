package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voicecheck",
	Short: "Voice-leading validator",
	Long:  `Rule-based harmonic/voice-leading validator for multi-voice scores.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
