package idcase

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestConvertLinesPerLine(t *testing.T) {
	input := "myHTTPServer\r\nfoo2Bar\n\nReentrantReadWriteLock"
	var out bytes.Buffer
	err := ConvertLines(ConvertRequest{
		Reader: strings.NewReader(input),
		Writer: &out,
		Style:  StyleKebab,
	})
	if err != nil {
		t.Fatalf("convert lines: %v", err)
	}
	want := "my-http-server\nfoo-2-bar\n\nreentrant-read-write-lock\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestConvertLinesOptions(t *testing.T) {
	input := "  fooBar  \n   \nbaz_qux\n"
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	err := ConvertLines(ConvertRequest{
		Reader:     strings.NewReader(input),
		Writer:     &out,
		Style:      StyleCamel,
		CamelUpper: true,
		Options:    []ConvertOption{WithTrimSpace(true), WithSkipEmpty(true), WithLogger(logger), nil},
	})
	if err != nil {
		t.Fatalf("convert lines: %v", err)
	}
	if got, want := out.String(), "FooBar\nBazQux\n"; got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
	if !strings.Contains(logs.String(), "skip empty line") {
		t.Fatalf("expected debug log for skipped line, got %q", logs.String())
	}
}

func TestConvertLinesUsesConfig(t *testing.T) {
	cfg := NewBuilder().Delimiters(".").ProtectedRules(RuleCase).Build()
	var out bytes.Buffer
	err := ConvertLines(ConvertRequest{
		Reader: strings.NewReader("java.util.HashMap"),
		Writer: &out,
		Style:  StyleSnake,
		Config: cfg,
	})
	if err != nil {
		t.Fatalf("convert lines: %v", err)
	}
	if got := out.String(); got != "java_util_hashmap\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertLinesRequestErrors(t *testing.T) {
	if err := ConvertLines(ConvertRequest{Writer: io.Discard}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := ConvertLines(ConvertRequest{Reader: strings.NewReader("")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	err := ConvertLines(ConvertRequest{Reader: strings.NewReader("x"), Writer: io.Discard, Style: Style(99)})
	if err == nil {
		t.Fatalf("expected error for unknown style")
	}
	err = ConvertLines(ConvertRequest{Reader: strings.NewReader("ok\n\xff\n"), Writer: io.Discard})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConvertLinesWriteError(t *testing.T) {
	err := ConvertLines(ConvertRequest{
		Reader: strings.NewReader("fooBar\n"),
		Writer: failingWriter{},
	})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestConvertLinesJoinKeepsOriginalCase(t *testing.T) {
	cfg := NewBuilder().Delimiters("::").ProtectedRules(RuleCase).Build()
	var out bytes.Buffer
	err := ConvertLines(ConvertRequest{
		Reader: strings.NewReader("MyClass::getValue\nfoo_barBaz\n"),
		Writer: &out,
		Style:  Style(99),
		Config: cfg,
		Join:   ".",
	})
	if err != nil {
		t.Fatalf("convert lines: %v", err)
	}
	if got, want := out.String(), "My.Class.getValue\nfoo.bar.Baz\n"; got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}
