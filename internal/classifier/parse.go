// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package classifier

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Reasons a line can fail to parse.
const (
	ReasonEmpty   = "empty input"
	ReasonSyntax  = "not a base-10 integer"
	ReasonRange   = "value out of range"
	ReasonNoInput = "no input"
)

// ParseError reports an input line that could not be read as an integer.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Input == "" {
		return fmt.Sprintf("cannot parse number: %s", e.Reason)
	}
	return fmt.Sprintf("cannot parse number %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ParseLine strips the line terminator and surrounding blanks, then parses
// what remains as a signed base-10 integer. The whole remainder must be
// consumed: "12abc" is rejected.
func ParseLine(line string) (int, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, &ParseError{Input: line, Reason: ReasonEmpty}
	}

	n, err := strconv.ParseInt(trimmed, 10, strconv.IntSize)
	if err != nil {
		reason := ReasonSyntax
		if errors.Is(err, strconv.ErrRange) {
			reason = ReasonRange
		}
		return 0, &ParseError{Input: trimmed, Reason: reason, Err: err}
	}
	return int(n), nil
}
