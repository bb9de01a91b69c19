/*
File Name:  Sanitize.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Sanitation of untrusted input crossing the API boundary: competence and
interest tags, and critical-data payloads. Tags are matched by string
equality throughout the core, so they are normalized here once.
*/

package sanitize

import (
	"strings"
	"unicode/utf8"
)

const TAG_MAX_LENGTH = 64       // Maximum length of a competence or interest tag.
const PAYLOAD_MAX_LENGTH = 4096 // Maximum length of a critical-data payload.

// Tag sanitizes a competence or interest tag.
func Tag(input string) string {
	if !utf8.ValidString(input) {
		return ""
	}

	input = strings.TrimSpace(input)
	input = strings.ToLower(input)

	return truncate(input, TAG_MAX_LENGTH)
}

// Tags sanitizes a list of tags. Tags that sanitize to empty are dropped.
func Tags(input []string) (output []string) {
	for _, tag := range input {
		if clean := Tag(tag); clean != "" {
			output = append(output, clean)
		}
	}

	return output
}

// Payload sanitizes a critical-data payload.
func Payload(input string) string {
	if !utf8.ValidString(input) {
		return "<invalid encoding>"
	}

	return truncate(input, PAYLOAD_MAX_LENGTH)
}

// truncate cuts the input to at most max bytes without splitting a rune.
func truncate(input string, max int) string {
	if len(input) <= max {
		return input
	}

	for max > 0 && !utf8.RuneStart(input[max]) {
		max--
	}

	return input[:max]
}
