package main

import (
	"log"
	"os"

	"github.com/mvp-joe/headermap/internal/cli"
)

func main() {
	args, err := cli.ExpandArgumentFiles(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to expand argument files: %v", err)
	}
	cli.Execute(args)
}
