package main

import "github.com/harmoniccanvas/voicecheck/cmd"

func main() {
	cmd.Execute()
}
