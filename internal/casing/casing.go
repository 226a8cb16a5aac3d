// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 shema contributors

// Package casing converts declaration identifiers to emitted-name form.
package casing

import "unicode"

type state int

const (
	prevSep state = iota
	prevLower
	prevUpper
	repeatUpper
)

// LowerSnake converts an identifier to lower_snake_case using sep '_'.
//
// Uppercase runs are kept together so acronyms survive ("HTTPServer" ->
// "http_server"); when a run of length >= 2 is followed by a non-uppercase
// character, its last letter belongs to the next word and is pulled back
// behind a separator. Existing separators are never doubled. The result
// never starts with a separator, and the function is idempotent.
func LowerSnake(input string) string {
	return LowerCaseBySep(input, '_')
}

// LowerCaseBySep is LowerSnake with a caller-chosen separator.
func LowerCaseBySep(input string, sep rune) string {
	var out []rune
	status := prevLower

	runes := []rune(input)
	if len(runes) == 0 {
		return ""
	}

	// The first character sets the initial state; no leading separator.
	if unicode.IsUpper(runes[0]) {
		status = prevUpper
		out = append(out, unicode.ToLower(runes[0]))
	} else {
		out = append(out, runes[0])
	}

	for _, ch := range runes[1:] {
		if unicode.IsUpper(ch) {
			if status == prevLower {
				out = append(out, sep)
			}
			out = append(out, unicode.ToLower(ch))
			switch status {
			case prevLower, prevSep:
				status = prevUpper
			default:
				status = repeatUpper
			}
			continue
		}

		if status == repeatUpper {
			// Last letter of an uppercase run starts the next word.
			last := out[len(out)-1]
			out = out[:len(out)-1]
			out = append(out, sep, last)
		}

		out = append(out, ch)
		if ch == sep {
			status = prevSep
		} else {
			status = prevLower
		}
	}

	return string(out)
}
