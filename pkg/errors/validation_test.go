package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "compile", false},
		{"valid with dash", "gen-sources", false},
		{"valid with dot", "vendor.libs", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidManifest) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidManifest)
			}
		})
	}
}

func TestValidateManifestFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"toml", "inputs.toml", false},
		{"hcl", "inputs.hcl", false},
		{"upper case extension", "INPUTS.TOML", false},
		{"with directory", "conf/inputs.hcl", false},

		{"empty", "", true},
		{"json", "inputs.json", true},
		{"no extension", "inputs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifestFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "src/main.go", false},
		{"absolute", "/usr/share/doc", false},
		{"parent", "../shared/lib.txt", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"tab", "foo\tbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"star", "*.go", false},
		{"double star", "**/*.go", false},
		{"class", "src/[a-c]*.txt", false},
		{"literal", "README.md", false},
		{"alternation", "src/*.{go,md}", false},

		{"empty", "", true},

		{"unclosed class", "src/[a-c.txt", true},
		{"unclosed alternation", "src/*.{go,md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePattern(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePattern(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPattern) {
				t.Errorf("ValidatePattern(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPattern)
			}
		})
	}
}

func TestHasGlobMeta(t *testing.T) {
	for in, want := range map[string]bool{
		"src/*.go":  true,
		"file?.txt": true,
		"[ab].txt":  true,
		"{a,b}.txt": true,
		"plain.txt": false,
		"dir/sub":   false,
	} {
		if got := HasGlobMeta(in); got != want {
			t.Errorf("HasGlobMeta(%q) = %v, want %v", in, got, want)
		}
	}
}
