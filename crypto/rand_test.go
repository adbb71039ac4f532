package crypto

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	testCases := []struct {
		name     string
		length   int
		alphabet string
	}{
		{
			name:     "alphanumeric",
			length:   32,
			alphabet: AlphanumericAlphabet,
		},
		{
			name:     "small alphabet",
			length:   64,
			alphabet: "ab",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := RandomString(tc.length, tc.alphabet)
			if len(s) != tc.length {
				t.Errorf("RandomString() length = %d, want %d", len(s), tc.length)
			}
			for _, char := range s {
				if !strings.ContainsRune(tc.alphabet, char) {
					t.Errorf("RandomString() contains invalid character: %c", char)
				}
			}
		})
	}
}

func TestRandomStringPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("The code did not panic")
		}
	}()

	RandomString(10, "")
}

func TestOauth2State(t *testing.T) {
	s := Oauth2State()
	if len(s) != Oauth2StateLength {
		t.Errorf("Oauth2State() length = %d, want %d", len(s), Oauth2StateLength)
	}
	if s == Oauth2State() {
		t.Error("two states should not collide")
	}
}
