package idcase

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var v validator
	for _, r := range string(src) {
		if err := v.addRune(r, utf8.RuneLen(r)); err != nil {
			return err
		}
	}
	return nil
}

// validator accumulates control rune statistics across lines.
type validator struct {
	total   int
	control int
}

func (v *validator) addLine(line string) error {
	if !utf8.ValidString(line) {
		return ErrInvalidUTF8
	}
	for _, r := range line {
		if err := v.addRune(r, utf8.RuneLen(r)); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) addRune(r rune, size int) error {
	if r == 0 {
		return ErrBinaryInput
	}
	v.total += size
	if isControlRune(r) {
		v.control++
		if v.total >= minBinarySample && v.control*100 >= v.total*maxControlPct {
			return ErrBinaryInput
		}
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	return false
}
