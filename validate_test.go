package idcase

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	noisy := bytes.Repeat([]byte("abcdefg\x01"), 16)
	if err := ValidateInput(noisy); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput for control-heavy input, got %v", err)
	}
}

func TestValidateInputAcceptsText(t *testing.T) {
	data := []byte("fooBar\r\n\tbaz_qux\nÜberGroß\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConvertLinesRejectsBinary(t *testing.T) {
	var out bytes.Buffer
	err := ConvertLines(ConvertRequest{
		Reader: bytes.NewReader([]byte{'a', 0x00, 'b'}),
		Writer: &out,
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}
