package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain runs the game and returns the process exit code, so deferred
// cleanup finishes before main exits
func realMain(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "go-life: ", 0)

	config, err := parseArgs(args)
	if err != nil {
		logger.Printf("%v", err)
		return 2
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, stdout); err != nil {
		logger.Printf("%v", err)
		return 1
	}
	return 0
}
