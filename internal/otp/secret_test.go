package otp

import (
	"errors"
	"strings"
	"testing"
)

func TestSecretFromHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "full width", input: "0123456789abcdef"},
		{name: "short value", input: "1"},
		{name: "uppercase digits", input: "DEADBEEF"},
		{name: "surrounding whitespace", input: "  deadbeef\n"},
		{name: "0x prefix", input: "0xdeadbeef"},
		{name: "zero", input: "0"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "bare prefix", input: "0x", wantErr: true},
		{name: "not hex", input: "hello world", wantErr: true},
		{name: "too long", input: "0123456789abcdef0", wantErr: true},
		{name: "mixed garbage", input: "12g4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SecretFromHex(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("SecretFromHex(%q) error = nil, want ErrInvalidSecret", tt.input)
				}
				if !errors.Is(err, ErrInvalidSecret) {
					t.Errorf("SecretFromHex(%q) error = %v, want ErrInvalidSecret", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("SecretFromHex(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestSecretHexKeyPadding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "1", want: "0000000000000001"},
		{input: "deadbeef", want: "00000000deadbeef"},
		{input: "DEADBEEF", want: "00000000deadbeef"},
		{input: "ffffffffffffffff", want: "ffffffffffffffff"},
	}

	for _, tt := range tests {
		s, err := SecretFromHex(tt.input)
		if err != nil {
			t.Fatalf("SecretFromHex(%q) unexpected error: %v", tt.input, err)
		}
		if got := string(s.hexKey()); got != tt.want {
			t.Errorf("hexKey() for %q = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestSecretStringMasksValue(t *testing.T) {
	s, err := SecretFromHex("deadbeef")
	if err != nil {
		t.Fatalf("SecretFromHex() unexpected error: %v", err)
	}

	if strings.Contains(s.String(), "deadbeef") {
		t.Errorf("String() leaked the secret: %q", s.String())
	}
}

func TestSecretErrorDoesNotEchoInput(t *testing.T) {
	_, err := SecretFromHex("super-secret-passphrase")
	if err == nil {
		t.Fatal("SecretFromHex() error = nil, want error")
	}
	if strings.Contains(err.Error(), "super-secret-passphrase") {
		t.Errorf("error message leaked the input: %q", err.Error())
	}
}
