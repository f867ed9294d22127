package main

import (
	"os"

	"royalstay/internal/app"
	"royalstay/internal/logger"
)

func main() {
	l := logger.New(os.Stdout)

	var exitCode int

	if err := app.Run(l); err != nil {
		l.LogErrorWithStack(err)

		exitCode = 1
	}

	os.Exit(exitCode)
}
