package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mendelics/vcf2seq/internal/app"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vcf2seq: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
