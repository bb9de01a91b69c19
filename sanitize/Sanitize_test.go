/*
File Name:  Sanitize_test.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTag(t *testing.T) {
	if Tag("  Doctor \n") != "doctor" {
		t.Fatalf("Tag did not normalize: %q", Tag("  Doctor \n"))
	}
	if Tag("\xff\xfe") != "" {
		t.Fatalf("invalid encoding not rejected")
	}
	if got := Tag(strings.Repeat("a", TAG_MAX_LENGTH+10)); len(got) != TAG_MAX_LENGTH {
		t.Fatalf("tag not truncated: %d", len(got))
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	// "ü" is 2 bytes and starts at byte 63, so the byte limit falls inside it
	input := strings.Repeat("a", TAG_MAX_LENGTH-1) + "üü"

	got := Tag(input)
	if len(got) > TAG_MAX_LENGTH {
		t.Fatalf("tag not truncated: %d", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if got != strings.Repeat("a", TAG_MAX_LENGTH-1) {
		t.Fatalf("Tag = %q", got)
	}

	payload := strings.Repeat("a", PAYLOAD_MAX_LENGTH-1) + "üü"
	if got := Payload(payload); !utf8.ValidString(got) || len(got) > PAYLOAD_MAX_LENGTH {
		t.Fatalf("payload truncation split a rune: %d bytes", len(got))
	}
}

func TestTags(t *testing.T) {
	output := Tags([]string{" Cardiology ", "", "\xff", "triage"})
	if len(output) != 2 || output[0] != "cardiology" || output[1] != "triage" {
		t.Fatalf("Tags = %v", output)
	}
}

func TestPayload(t *testing.T) {
	if Payload("InfoA") != "InfoA" {
		t.Fatalf("valid payload modified")
	}
	if Payload("\xff\xfe") != "<invalid encoding>" {
		t.Fatalf("invalid encoding not replaced")
	}
	if got := Payload(strings.Repeat("x", PAYLOAD_MAX_LENGTH*2)); len(got) != PAYLOAD_MAX_LENGTH {
		t.Fatalf("payload not truncated: %d", len(got))
	}
}
