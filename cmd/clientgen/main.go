package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/developerxd/webapiclientgen/cmd/clientgen/cmd"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

func main() {
	// CLIENTGEN_* overrides may live in a local .env
	_ = godotenv.Load()

	err := cmd.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(cmd.ExitCode(err))
	}
}
