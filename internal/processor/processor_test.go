package processor

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"numcheck/internal/classifier"
)

const (
	aboveLine   = "Your number is above 10\n"
	atOrBelowLn = "Your number is less than or equal to 10\n"
)

func TestRun_Scenarios(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"15\n", aboveLine},
		{"10\n", atOrBelowLn},
		{"0\n", atOrBelowLn},
		{"-100\n", atOrBelowLn},
		{"11\n", aboveLine},
		{"-5\n", atOrBelowLn},
		{"11", aboveLine},
	}
	for _, c := range cases {
		var out bytes.Buffer
		if _, err := Run(strings.NewReader(c.input), &out); err != nil {
			t.Errorf("Run(%q) error: %v", c.input, err)
			continue
		}
		want := Prompt + "\n" + c.want
		if out.String() != want {
			t.Errorf("Run(%q) output = %q, want %q", c.input, out.String(), want)
		}
	}
}

func TestRun_ReadsOnlyFirstLine(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(strings.NewReader("3\n99\n"), &out)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Value != 3 || res.Class != classifier.NotAbove {
		t.Errorf("Run result = %+v", res)
	}
}

func TestRun_Idempotent(t *testing.T) {
	var first, second bytes.Buffer
	if _, err := Run(strings.NewReader("42\n"), &first); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(strings.NewReader("42\n"), &second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("outputs differ: %q vs %q", first.String(), second.String())
	}
}

func TestRun_ParseErrors(t *testing.T) {
	for _, input := range []string{"abc\n", "\n", "", "12abc\n"} {
		var out bytes.Buffer
		_, err := Run(strings.NewReader(input), &out)
		if !classifier.IsParseError(err) {
			t.Errorf("Run(%q) error = %v, want ParseError", input, err)
		}
		if out.String() != Prompt+"\n" {
			t.Errorf("Run(%q) wrote %q, want prompt only", input, out.String())
		}
	}
}

func TestRun_NoInputReason(t *testing.T) {
	_, err := Run(strings.NewReader(""), io.Discard)
	var pe *classifier.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Reason != classifier.ReasonNoInput {
		t.Errorf("reason = %q, want %q", pe.Reason, classifier.ReasonNoInput)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(failingReader{err: boom}, io.Discard)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped read error, got %v", err)
	}
	if classifier.IsParseError(err) {
		t.Error("read failure should not be a ParseError")
	}
}

func TestRun_WriteError(t *testing.T) {
	if _, err := Run(strings.NewReader("5\n"), failingWriter{}); err == nil {
		t.Error("expected error when output is not writable")
	}
}
