package errors

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

// manifestExtensions lists the file extensions accepted for input manifests.
var manifestExtensions = []string{".toml", ".hcl"}

// ValidateName validates a group, task or tree name declared in a manifest.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidManifest, "name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "name %q contains invalid control characters", name)
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidManifest, "name %q cannot contain path separators", name)
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename.
// Only TOML and HCL manifests are supported.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range manifestExtensions {
		if ext == allowed {
			return nil
		}
	}

	return New(ErrCodeInvalidManifest, "unsupported manifest type %q (want .toml or .hcl)", filepath.Base(filename))
}

// ValidatePath validates an input path declared in a manifest.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Absolute paths and parent references are allowed: inputs routinely point
// outside the manifest's directory.
func ValidatePath(p string) error {
	if p == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(p) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range p {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path %q contains invalid characters", p)
		}
	}

	return nil
}

// ValidatePattern validates an include/exclude or glob pattern in doublestar
// syntax.
func ValidatePattern(pattern string) error {
	if err := ValidatePath(pattern); err != nil {
		return New(ErrCodeInvalidPattern, "invalid pattern: %s", UserMessage(err))
	}

	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return New(ErrCodeInvalidPattern, "invalid pattern %q", pattern)
	}

	return nil
}

// HasGlobMeta reports whether s contains glob meta characters.
func HasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
