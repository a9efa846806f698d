package client

import (
	"log"
	"os"
)

// InitLogging routes diagnostics to stderr. Nothing is written to disk.
func InitLogging() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stderr)
}
