package main

import "ttskit/internal/cli"

func main() {
	cli.Execute()
}
