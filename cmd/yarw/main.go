// Command yarw manages Roblox launch profiles.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(&rootOptions{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
