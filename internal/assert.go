// Package internal contains helpers shared by the framesize packages.
package internal

import (
	"context"

	"github.com/xaionaro-go/framesize/logger"
)

// Assert panics (through the logger) if an internal invariant is broken.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	logger.Panic(ctx, "assertion failed", extraArgs)
}
