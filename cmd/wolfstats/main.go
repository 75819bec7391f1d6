package main

import (
	"context"
	"fmt"
	"os"

	"wolfstats/internal/cli"
)

func main() {
	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
