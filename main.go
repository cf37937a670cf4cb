package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secmon-lab/workboard/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("workboard failed", "error", err)
		os.Exit(1)
	}
}
