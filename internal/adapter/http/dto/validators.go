package dto

import (
	"fmt"
	"strings"

	"guild-wager-platform/internal/core/domain"
)

// ParseWagerMode validates and normalizes a mode string from a request.
func ParseWagerMode(s string) (domain.WagerMode, error) {
	switch domain.WagerMode(strings.ToLower(strings.TrimSpace(s))) {
	case domain.WagerModeHouse:
		return domain.WagerModeHouse, nil
	case domain.WagerModePot:
		return domain.WagerModePot, nil
	default:
		return "", fmt.Errorf("unknown wager mode %q", s)
	}
}
