package main

import (
	"github.com/bornholm/readings/internal/command"
	"github.com/bornholm/readings/internal/command/readings"
)

func main() {
	command.Main(
		"readings-cli", "a readings client tool",
		readings.Command(),
	)
}
