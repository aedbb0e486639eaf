// Package main is the entry point for the joke catalog API server.
package main

import (
	"context"
	"log"
	"os"

	"jokecatalog/src/app/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}
