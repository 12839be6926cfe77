package main

import (
	"os"

	"github.com/sophiekatz/forge-go/internal/config"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/streams"
)

// renderMessages writes every message at or above SeverityNote to
// stderr, honoring cfg's resolved color mode, then returns an
// exitCodeError(1) if messages contains any error (or worse) so the
// caller can propagate a non-zero exit without printing a second
// "Error: ..." line on top of the render.
func renderMessages(cfg *config.Config, messages *diag.Buffer) error {
	stream := streams.Stderr(cfg.ColorMode, cfg.UnicodeMode)
	messages.Render(os.Stderr, diag.SeverityNote, stream.Color())

	if messages.ErrorCount > 0 {
		return exitCodeError(1)
	}

	return nil
}
