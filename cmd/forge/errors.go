package main

// exitCodeError signals that a command already reported its failure
// through a diag.Buffer render (or other direct stderr write) and
// main should only translate it into a process exit code, not print
// a second "Error: ..." line on top of it.
type exitCodeError int

func (e exitCodeError) Error() string { return "" }
