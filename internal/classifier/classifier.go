// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package classifier parses an input line into an integer and classifies it
// against the fixed threshold.
package classifier

import "fmt"

// Threshold is the value a number has to exceed to be classified as above.
const Threshold = 10

// Class is the outcome of comparing a number to the threshold.
type Class int

const (
	NotAbove Class = iota
	Above
)

func (c Class) String() string {
	switch c {
	case Above:
		return "above"
	case NotAbove:
		return "not_above"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Result holds a parsed value and its classification.
type Result struct {
	Value int
	Class Class
}

// Classify compares n with Threshold. Only values strictly greater than the
// threshold are Above.
func Classify(n int) Result {
	class := NotAbove
	if n > Threshold {
		class = Above
	}
	return Result{Value: n, Class: class}
}

// Message returns the sentence shown to the user for this result.
func (r Result) Message() string {
	if r.Class == Above {
		return fmt.Sprintf("Your number is above %d", Threshold)
	}
	return fmt.Sprintf("Your number is less than or equal to %d", Threshold)
}
