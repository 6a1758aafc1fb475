package main

import (
	"os"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
