package url

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "https scheme unchanged",
			input: "https://fmfau.org/",
			want:  "https://fmfau.org/",
		},
		{
			name:  "http scheme unchanged",
			input: "http://fmfau.org",
			want:  "http://fmfau.org",
		},
		{
			name:  "about scheme unchanged",
			input: "about:blank",
			want:  "about:blank",
		},
		{
			name:  "bare domain gets https",
			input: "fmfau.org",
			want:  "https://fmfau.org",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  fmfau.org/watch  ",
			want:  "https://fmfau.org/watch",
		},
		{
			name:  "plain words unchanged",
			input: "hello world",
			want:  "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHostname(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lower-cases host", input: "https://Sub.FMFAU.org/path", want: "sub.fmfau.org"},
		{name: "strips port", input: "https://fmfau.org:8443/", want: "fmfau.org"},
		{name: "strips trailing dot", input: "https://fmfau.org./", want: "fmfau.org"},
		{name: "about blank has no host", input: "about:blank", want: ""},
		{name: "empty is invalid", input: "", wantErr: true},
		{name: "bad escape is invalid", input: "https://fmfau.org/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hostname(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Fatalf("Hostname(%q) error = %v, want ErrInvalidURL", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Hostname(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Hostname(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSuffix(t *testing.T) {
	if got := NormalizeSuffix(" .FMFAU.org. "); got != "fmfau.org" {
		t.Errorf("NormalizeSuffix = %q, want %q", got, "fmfau.org")
	}
}
