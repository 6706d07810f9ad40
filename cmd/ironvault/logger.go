package main

import (
	"os"

	"github.com/apsislabs/iron-vault/internal/logging"
)

func buildLogger(level, format string) *logging.Logger {
	f := logging.FormatText
	if format == "json" {
		f = logging.FormatJSON
	}
	return logging.NewLogger(
		logging.WithOutput(os.Stderr),
		logging.WithLevel(logging.ParseLevel(level)),
		logging.WithFormat(f),
		logging.WithName("ironvault"),
	)
}
