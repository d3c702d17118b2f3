package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/harmoniccanvas/voicecheck/analyze"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <score.json>",
	Short: "Watches a score file",
	Long:  `Re-analyzes a JSON score file whenever it changes`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch(args[0])
	},
}

func analyzeAndPrint(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Skipping analysis because: %v\n", err)
		return
	}

	var score model.AnalyzeRequestBody
	if err := json.Unmarshal(data, &score); err != nil {
		// mid-save truncation shows up as a parse error
		fmt.Printf("Skipping analysis because: %v\n", err)
		return
	}

	cfg, err := resolveConfig(score.Preset, score.Config)
	if err != nil {
		fmt.Printf("Skipping analysis because: %v\n", err)
		return
	}

	fmt.Printf("--- %v\n", time.Now().Format(time.Kitchen))
	printReport(analyze.RunMerged(score.Voices, cfg))
}

func watch(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		panic("Could not create watcher: " + err.Error())
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		panic("Could not watch score file: " + err.Error())
	}

	analyzeAndPrint(path)

	// editors fire bursts of writes per save
	d := debounce.New(200 * time.Millisecond)
	rerun := func() { analyzeAndPrint(path) }

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				d(rerun)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}
