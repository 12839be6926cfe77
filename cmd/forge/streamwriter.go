package main

import "github.com/sophiekatz/forge-go/internal/streams"

// stdoutWriter adapts a *streams.Stream to io.Writer for callers
// (codegen.Module.Print) that only know about the standard io
// interfaces, not the stream's own WriteString.
type stdoutWriter struct {
	stream *streams.Stream
}

func (w stdoutWriter) Write(p []byte) (int, error) {
	w.stream.WriteString(string(p))
	return len(p), nil
}
