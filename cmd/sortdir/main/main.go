package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/sortdir/cmd/sortdir"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := sortdir.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
