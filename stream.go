package idcase

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ConvertRequest configures ConvertLines.
type ConvertRequest struct {
	Reader io.Reader
	Writer io.Writer
	Style  Style
	// Config drives tokenization. Nil uses DefaultConfig.
	Config *Config
	// CamelUpper starts StyleCamel output with an upper case letter.
	CamelUpper bool
	// Join, when non-empty, joins the words of each line with Join in their
	// original case and Style is ignored.
	Join    string
	Options []ConvertOption
}

var readerPool = sync.Pool{
	New: func() any { return bufio.NewReaderSize(nil, 4096) },
}

// ConvertLines reads text from Reader and writes every line converted to
// Style, each terminated by a newline. Input must be UTF-8 text; binary input
// stops the conversion with ErrBinaryInput.
func ConvertLines(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert lines: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert lines: Writer is nil")
	}
	if req.Join == "" && req.Style >= styleCount {
		return fmt.Errorf("convert lines: unknown style %d", req.Style)
	}
	opts := newConvertConfig(req.Options)
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
	}()
	w := bufio.NewWriter(req.Writer)

	var v validator
	lines := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("convert lines: read: %w", err)
		}
		if line == "" && err == io.EOF {
			break
		}
		lines++
		line = strings.TrimRight(line, "\r\n")
		if verr := v.addLine(line); verr != nil {
			return fmt.Errorf("convert lines: line %d: %w", lines, verr)
		}
		if opts.trimSpace {
			line = strings.TrimSpace(line)
		}
		if line == "" && opts.skipEmpty {
			opts.logger.Debug("skip empty line", "line", lines)
		} else {
			out := req.convert(line)
			opts.logger.Debug("converted line", "line", lines, "in", line, "out", out)
			if _, werr := w.WriteString(out); werr != nil {
				return fmt.Errorf("convert lines: write: %w", werr)
			}
			if werr := w.WriteByte('\n'); werr != nil {
				return fmt.Errorf("convert lines: write: %w", werr)
			}
		}
		if err == io.EOF {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("convert lines: flush: %w", err)
	}
	opts.logger.Debug("conversion done", "lines", lines)
	return nil
}

func (req ConvertRequest) convert(line string) string {
	if req.Join != "" {
		return OriginalTokens(line, req.Config, req.Join)
	}
	return ConvertWith(line, req.Style, req.Config, req.CamelUpper)
}
