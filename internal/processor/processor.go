// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package processor runs the interactive prompt: it reads one line, classifies
// the number on it and prints the verdict.
package processor

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"numcheck/internal/classifier"
)

// Prompt is written before reading the input line.
const Prompt = "Enter a number, any number at all:"

// Run prompts on out, reads a single line from in and writes the
// classification of the number it holds. Nothing but the prompt is written
// when the line cannot be parsed.
func Run(in io.Reader, out io.Writer) (classifier.Result, error) {
	if _, err := fmt.Fprintln(out, Prompt); err != nil {
		return classifier.Result{}, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := readLine(in)
	if err != nil {
		return classifier.Result{}, err
	}

	n, err := classifier.ParseLine(line)
	if err != nil {
		return classifier.Result{}, err
	}

	result := classifier.Classify(n)
	if _, err := fmt.Fprintln(out, result.Message()); err != nil {
		return result, fmt.Errorf("failed to write result: %w", err)
	}
	return result, nil
}

// readLine returns everything up to and including the first newline. End of
// stream terminates the line as well, unless nothing was read at all.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", &classifier.ParseError{Reason: classifier.ReasonNoInput, Err: err}
		}
	}
	return line, nil
}
