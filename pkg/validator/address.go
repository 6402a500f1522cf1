package validator

import (
	"regexp"
	"strings"
)

// Verdict is a tri-state validation outcome. Indeterminate means there was
// nothing to judge, which callers usually render as "no feedback yet".
type Verdict int

const (
	Indeterminate Verdict = iota
	Valid
	Invalid
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "indeterminate"
	}
}

// Ptr maps the verdict onto a nullable bool for JSON output.
func (v Verdict) Ptr() *bool {
	if v == Indeterminate {
		return nil
	}
	ok := v == Valid
	return &ok
}

const (
	hexGroup    = `[0-9A-Fa-f]{1,4}`
	ipv4Byte    = `(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|0?[0-9]?[0-9])`
	ipv4Address = `(?:` + ipv4Byte + `\.){3}` + ipv4Byte
	ipv4Block   = `(?:/(?:3[0-2]|[12]?\d))?`
	ipv6Block   = `(?:/(?:12[0-8]|1[01][0-9]|[1-9]?\d))?`

	ipv6Compressed = `^(?::(?::|(?::` + hexGroup + `){1,7})` +
		`|` + hexGroup + `(?::` + hexGroup + `){0,6}::` +
		`|` + hexGroup + `(?::` + hexGroup + `){7})`
	ipv6Loose = `^` + hexGroup + `(?:::?` + hexGroup + `){1,6}`
)

var (
	// HTML5 valid e-mail: atext local part, '@', one or more ldh-str labels.
	// A single-label domain is accepted. Letters are spelled out as ASCII
	// ranges since (?i) would also fold U+017F and U+212A onto s and k.
	emailRegex = regexp.MustCompile("^[A-Za-z0-9!#$%&'*+\\-/=?^_`{|}~.]+@[A-Za-z0-9\\-]+(?:\\.[A-Za-z0-9\\-]+)*$")

	ipv4Regex      = regexp.MustCompile(`^` + ipv4Address + `$`)
	ipv4BlockRegex = regexp.MustCompile(`^` + ipv4Address + ipv4Block + `$`)

	ipv6Regex           = regexp.MustCompile(ipv6Compressed + `$`)
	ipv6BlockRegex      = regexp.MustCompile(ipv6Compressed + ipv6Block + `$`)
	ipv6LooseRegex      = regexp.MustCompile(ipv6Loose + `$`)
	ipv6LooseBlockRegex = regexp.MustCompile(ipv6Loose + ipv6Block + `$`)
	doubleCompression   = regexp.MustCompile(`::.*::`)
)

// ValidateEmail checks s against the HTML5 e-mail grammar.
// An empty string yields Indeterminate.
func ValidateEmail(s string) Verdict {
	if s == "" {
		return Indeterminate
	}
	if emailRegex.MatchString(s) {
		return Valid
	}
	return Invalid
}

// IsIPv4Address reports whether s is a dotted-quad IPv4 address, optionally
// followed by a /0-/32 prefix length when allowBlock is set.
// Bytes may carry a single leading zero ("01").
func IsIPv4Address(s string, allowBlock bool) bool {
	if allowBlock {
		return ipv4BlockRegex.MatchString(s)
	}
	return ipv4Regex.MatchString(s)
}

// IsIPv6Address reports whether s looks like an IPv6 address, optionally
// followed by a /0-/128 prefix length when allowBlock is set.
//
// The second pass accepts any 2-7 groups joined by ':' or '::' provided the
// string contains exactly one '::'. It does not check that the group count
// fits the compression, so a few over-long forms are accepted.
func IsIPv6Address(s string, allowBlock bool) bool {
	primary, loose := ipv6Regex, ipv6LooseRegex
	if allowBlock {
		primary, loose = ipv6BlockRegex, ipv6LooseBlockRegex
	}

	if primary.MatchString(s) {
		return true
	}

	return loose.MatchString(s) &&
		strings.Contains(s, "::") &&
		!doubleCompression.MatchString(s)
}

// IsIPv4Value is IsIPv4Address for untyped input; anything but a string is invalid.
func IsIPv4Value(v any, allowBlock bool) bool {
	s, ok := v.(string)
	return ok && IsIPv4Address(s, allowBlock)
}

// IsIPv6Value is IsIPv6Address for untyped input; anything but a string is invalid.
func IsIPv6Value(v any, allowBlock bool) bool {
	s, ok := v.(string)
	return ok && IsIPv6Address(s, allowBlock)
}

// IsIPAddress accepts either family.
func IsIPAddress(s string, allowBlock bool) bool {
	return IsIPv4Address(s, allowBlock) || IsIPv6Address(s, allowBlock)
}

// Address kinds understood by ValidateAddress.
const (
	KindEmail = "email"
	KindIPv4  = "ipv4"
	KindIPv6  = "ipv6"
	KindIP    = "ip"
)

// AddressKinds lists the kinds in a stable order.
var AddressKinds = []string{KindEmail, KindIPv4, KindIPv6, KindIP}

// ValidateAddress dispatches to the validator for kind. allowBlock only
// applies to the IP kinds. An unknown kind is reported as ValidationErrors.
func ValidateAddress(kind, value string, allowBlock bool) (Verdict, error) {
	if err := Apply(OneOf("kind", kind, AddressKinds...)); err != nil {
		return Indeterminate, err
	}

	var ok bool
	switch kind {
	case KindEmail:
		return ValidateEmail(value), nil
	case KindIPv4:
		ok = IsIPv4Address(value, allowBlock)
	case KindIPv6:
		ok = IsIPv6Address(value, allowBlock)
	case KindIP:
		ok = IsIPAddress(value, allowBlock)
	}
	if ok {
		return Valid, nil
	}
	return Invalid, nil
}
