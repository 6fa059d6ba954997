package main

import "github.com/hmatsuda/stagesync/cmd"

func main() {
	cmd.Execute()
}
