package main

import "github.com/upwatchdev/upwatch/cmd"

func main() {
	cmd.Execute()
}
