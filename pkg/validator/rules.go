package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newError(field, ErrFieldRequired.Error(), "validation.required", nil),
	}
}

// MaxLenString limits value to max characters (runes, not bytes).
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: newError(field,
			fmt.Sprintf("must be at most %d characters long", max),
			"validation.max_length",
			map[string]any{"max": max},
		),
	}
}

// ContainsString requires substr to appear in value. Used for templates
// such as the article path, which must carry a "$1" placeholder.
func ContainsString(field, value, substr string) Rule {
	return Rule{
		Check: func() bool {
			return strings.Contains(value, substr)
		},
		Error: newError(field,
			fmt.Sprintf("must contain %q", substr),
			"validation.contains",
			map[string]any{"substring": substr},
		),
	}
}

// ValidEmail requires a non-empty HTML5 e-mail address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidateEmail(value) == Valid
		},
		Error: newError(field, "must be a valid email address", "validation.email", nil),
	}
}

// ValidIPv4 requires an IPv4 address; allowBlock also admits a CIDR suffix.
func ValidIPv4(field, value string, allowBlock bool) Rule {
	return Rule{
		Check: func() bool {
			return IsIPv4Address(value, allowBlock)
		},
		Error: newError(field, ipMessage("IPv4", allowBlock), "validation.ipv4",
			map[string]any{"block": allowBlock}),
	}
}

// ValidIPv6 requires an IPv6 address; allowBlock also admits a CIDR suffix.
func ValidIPv6(field, value string, allowBlock bool) Rule {
	return Rule{
		Check: func() bool {
			return IsIPv6Address(value, allowBlock)
		},
		Error: newError(field, ipMessage("IPv6", allowBlock), "validation.ipv6",
			map[string]any{"block": allowBlock}),
	}
}

// ValidIP accepts an address of either family.
func ValidIP(field, value string, allowBlock bool) Rule {
	return Rule{
		Check: func() bool {
			return IsIPAddress(value, allowBlock)
		},
		Error: newError(field, ipMessage("IP", allowBlock), "validation.ip",
			map[string]any{"block": allowBlock}),
	}
}

func ipMessage(family string, allowBlock bool) string {
	if allowBlock {
		return fmt.Sprintf("must be a valid %s address or range", family)
	}
	return fmt.Sprintf("must be a valid %s address", family)
}

// OneOf requires value to equal one of allowed.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: newError(field,
			fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
			"validation.one_of",
			map[string]any{"values": allowed},
		),
	}
}
