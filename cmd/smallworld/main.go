// Command smallworld builds a Watts–Strogatz ring, rewires it and reports how
// the shortest path between opposite vertices shrinks.
//
//	smallworld run --nodes 60 --fraction 0.059 --seed 1
//	smallworld sweep --fractions 0,0.01,0.1,1 --trials 20
//	smallworld dot --highlight > ring.dot
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
