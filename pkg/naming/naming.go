// Package naming derives stable node identifiers from human-entered names.
//
// Inventory exports carry free-form names (datacenter labels, ESXi hostnames,
// asset tags) that are unusable as graph identifiers directly. SanitizeID maps
// any name onto the closed alphabet [a-z0-9-_] deterministically, so the same
// entity always produces the same identifier regardless of which upload it
// came from.
//
// Two distinct names that sanitize to the same string are treated as the same
// entity downstream. The builder surfaces those collisions instead of failing;
// see the builder package.
package naming

import "strings"

// suffixes stripped by NormalizeDisplayName. Order does not matter since at
// most one suffix is removed.
var domainSuffixes = []string{".local", ".corp", ".internal", ".lan"}

// SanitizeID converts a free-form name into a stable identifier.
//
// The transformation lower-cases the input, replaces every character outside
// [a-z0-9-_] with "-", collapses runs of "-" into one, and trims leading and
// trailing "-". It is pure: identical input always yields identical output.
func SanitizeID(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	prevDash := false
	for _, r := range lower {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
		if !ok {
			r = '-'
		}
		if r == '-' {
			if prevDash {
				continue
			}
			prevDash = true
		} else {
			prevDash = false
		}
		b.WriteRune(r)
	}

	return strings.Trim(b.String(), "-")
}

// Prefixed returns the kind-prefixed identifier for a named entity, e.g.
// Prefixed("host", "ESXi-01.corp") == "host-esxi-01-corp". Node identity is a
// pure function of the kind prefix and the sanitized natural key.
func Prefixed(prefix, name string) string {
	return prefix + "-" + SanitizeID(name)
}

// NormalizeDisplayName strips a known domain suffix (.local, .corp,
// .internal, .lan) from a name for display purposes.
//
// The result is lossy ("db01.corp" and "db01.lan" normalize identically), so
// it must never be used to derive identifiers. Use SanitizeID for identity.
func NormalizeDisplayName(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range domainSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}
