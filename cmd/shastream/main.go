// Package main is the shastream CLI entrypoint.
package main

import (
	"os"

	"shastream/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run(os.Args[1:]))
}
