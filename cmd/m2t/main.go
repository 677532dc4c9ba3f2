package main

import (
	"fmt"
	"os"

	"memo-whisper/cmd/m2t/cmd"
	"memo-whisper/internal/config"
)

func main() {
	// Initialize configuration (non-blocking - transcriber selection is only
	// validated once a command actually needs it)
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		// Continue execution - don't exit
	}

	// Execute the CLI command
	cmd.Execute()
}
