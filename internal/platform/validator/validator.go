// Package validator centralizes input validation for targets and proxy addresses.
package validator

import (
	"net"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Allows IDN labels in punycode form; plain unicode is out of scope here.
var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// NormalizeDomain canonicalizes a target: surrounding whitespace removed
// first, then lowercased, then a single trailing FQDN dot stripped. Both the
// -d flag and list-file entries pass through here so a given target always
// yields the same output file names.
func NormalizeDomain(s string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
}

// IsDomain reports whether s looks like a valid domain name.
func IsDomain(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	if !domainRegex.MatchString(s) {
		return false
	}
	// an IP address is not a domain
	if net.ParseIP(s) != nil {
		return false
	}
	return true
}

// RegistrableDomain returns the eTLD+1 for a domain, or the input unchanged
// when the public suffix list cannot resolve it (localhost, internal names).
func RegistrableDomain(domain string) string {
	eTLDPlusOne, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return domain
	}
	return eTLDPlusOne
}

// HasListedSuffix reports whether the domain ends in a suffix present in the
// public suffix list. Targets failing this are still processed, just flagged.
func HasListedSuffix(domain string) bool {
	suffix, icann := publicsuffix.PublicSuffix(strings.ToLower(domain))
	return icann && suffix != ""
}

// IsProxyAddr reports whether s is a valid host:port proxy address.
func IsProxyAddr(s string) bool {
	host, port, err := net.SplitHostPort(s)
	if err != nil || host == "" {
		return false
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return p > 0 && p <= 65535
}
