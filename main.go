package main

import (
	"os"

	"github.com/DansiDanutz/MyWork-AI-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
