package uri

import (
	"fmt"
	"testing"
)

const unreservedAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789-._~"

func TestEncodeUnreservedIsIdentity(t *testing.T) {
	if got := Encode(unreservedAlphabet); got != unreservedAlphabet {
		t.Errorf("Encode(%q) = %q", unreservedAlphabet, got)
	}

	if got := Decode(Encode(unreservedAlphabet)); got != unreservedAlphabet {
		t.Errorf("Decode(Encode(%q)) = %q", unreservedAlphabet, got)
	}
}

func TestEncodeAllBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		in := string([]byte{b})
		got := Encode(in)

		if isUnreservedByte(b) {
			if got != in {
				t.Errorf("Encode(%q) = %q, want identity", in, got)
			}
			continue
		}

		want := fmt.Sprintf("%%%02X", b)
		if got != want {
			t.Errorf("Encode(%q) = %q, want %q", in, got, want)
		}

		if back := Decode(got); back != in {
			t.Errorf("Decode(%q) = %q, want %q", got, back, in)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"%41", "A"},
		{"%61%62%63", "abc"},
		{"a%20b", "a b"},
		{"%ff", "\xff"},
		{"%2541", "%41"},

		// Malformed sequences pass through verbatim.
		{"%", "%"},
		{"%4", "%4"},
		{"%zz", "%zz"},
		{"100%", "100%"},
		{"%%41", "%A"},
	}

	for _, tt := range tests {
		if got := Decode(tt.in); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
