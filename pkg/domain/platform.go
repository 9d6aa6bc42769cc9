package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Platform identifies one of the supported no-code automation platforms.
type Platform string

const (
	PlatformMake Platform = "make"
	PlatformN8N  Platform = "n8n"
)

var (
	ErrUnknownPlatform   = errors.New("unknown platform")
	ErrSamePlatform      = errors.New("source and target platforms must be different")
	ErrInvalidBlueprint  = errors.New("invalid blueprint JSON")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrBlueprintMismatch = errors.New("blueprint does not match declared platform")
)

// ParsePlatform normalizes a user-supplied platform name. It accepts the
// marketing spellings ("Make.com", "N8N") seen in import/export dialogs.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ".com")) {
	case "make":
		return PlatformMake, nil
	case "n8n":
		return PlatformN8N, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
}

// Other returns the opposite platform.
func (p Platform) Other() Platform {
	if p == PlatformMake {
		return PlatformN8N
	}
	return PlatformMake
}
