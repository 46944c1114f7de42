package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	playcmd "github.com/louisbranch/tycoon-engine/internal/cmd/play"
)

func main() {
	cfg, err := playcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PLAY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := playcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to simulate: %v", err)
	}
}
