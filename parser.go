// File: iniconf/parser.go
package iniconf

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// maxLineSize caps the scanner's line buffer. Config files are small; a
// line this long is a broken input, not configuration.
const maxLineSize = 1 << 20

// Read parses INI text from r. source identifies the input in error values
// and is usually a file path.
//
// The result is all-or-nothing: on success the error is nil, otherwise the
// error is a *ParseErrors listing every problem found and the Store is the
// zero value. Partial parses are never surfaced.
//
// Lines are limited to 1 MiB; a longer line fails the read with an
// *IOError wrapping bufio.ErrTooLong rather than parsing.
func Read(r io.Reader, source string) (Store, error) {
	var errs ParseErrors
	values := make(map[Key]string)
	group := DefaultGroup
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch c := classify(line); c.kind {
		case lineBlank, lineComment:
			// No state change.
		case lineGroup:
			// Re-opening a previously seen group resumes adding to it.
			group = c.group
		case lineAssign:
			values[Key{Group: group, Variable: c.key}] = c.value
		case lineBadGroup:
			errs.List = append(errs.List, &ParseError{
				Kind: MissingClosingBracket, File: source, Line: lineNo, Text: line,
			})
		case lineBadAssign:
			errs.List = append(errs.List, &ParseError{
				Kind: MissingVariableName, File: source, Line: lineNo, Text: line,
			})
		case lineInvalid:
			errs.List = append(errs.List, &ParseError{
				Kind: InvalidLine, File: source, Line: lineNo, Text: line,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		// A failed read delivers no line, so the counter stays put.
		// Recorded once; retrying a persistent read error cannot terminate.
		errs.List = append(errs.List, &IOError{Path: source, Err: err})
	}

	if len(errs.List) > 0 {
		return Store{}, &errs
	}
	return Store{values: values}, nil
}

// ReadString parses INI text held in memory.
func ReadString(text, source string) (Store, error) {
	return Read(strings.NewReader(text), source)
}

// ReadFile parses the INI file at path. If the file cannot be opened, the
// returned *ParseErrors holds a single *IOError and nothing is parsed.
// Read's 1 MiB line limit applies.
func ReadFile(path string) (Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return Store{}, &ParseErrors{List: []error{&IOError{Path: path, Err: err}}}
	}
	defer f.Close()

	return Read(f, path)
}
