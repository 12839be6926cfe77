package config

import (
	"errors"
	"testing"
)

func TestCLIErrorMessageWithoutDetail(t *testing.T) {
	err := CLIError{Code: ErrInvalidFlag, Message: "bad flag"}
	if err.Error() != "bad flag" {
		t.Errorf("got %q, want %q", err.Error(), "bad flag")
	}
}

func TestCLIErrorMessageWithDetail(t *testing.T) {
	err := CLIError{Code: ErrUnreadableSrc, Message: "cannot read file", Detail: "permission denied"}
	want := "cannot read file: permission denied"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestCLIErrorJSON(t *testing.T) {
	err := CLIError{Code: ErrMissingInput, Message: "no input file"}
	got := err.JSON()
	want := `{"code":"ERR_MISSING_INPUT","message":"no input file"}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWrapProducesCLIError(t *testing.T) {
	inner := errors.New("disk full")
	wrapped := Wrap(ErrWriteFailed, "failed to write artifact", inner)

	var cliErr CLIError
	if !errors.As(wrapped, &cliErr) {
		t.Fatal("expected Wrap's result to be a CLIError")
	}
	if cliErr.Detail != "disk full" {
		t.Errorf("got detail %q, want %q", cliErr.Detail, "disk full")
	}
}
