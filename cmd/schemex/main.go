package main

import (
	"log"

	"github.com/goliatone/go-schemex/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
