// Package main is the entry point for the employee directory API.
package main

import (
	"context"
	"log"
	"os"

	"employeedir/src/app/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}
