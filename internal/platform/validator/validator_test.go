package validator

import "testing"

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normal", "example.com", "example.com"},
		{"uppercase", "Example.COM", "example.com"},
		{"trailing fqdn dot", "example.com.", "example.com"},
		{"whitespace then dot then case", "  Example.COM.  ", "example.com"},
		{"tabs", "\texample.com\t", "example.com"},
		{"only whitespace", "   ", ""},
		{"lone dot", ".", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDomain(tt.input); got != tt.expected {
				t.Errorf("NormalizeDomain(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"simple domain", "example.com", true},
		{"subdomain", "api.staging.example.com", true},
		{"hyphenated", "my-site.example.co.uk", true},
		{"single label", "localhost", true},
		{"empty", "", false},
		{"ip address", "192.168.1.1", false},
		{"leading hyphen", "-bad.example.com", false},
		{"trailing hyphen", "bad-.example.com", false},
		{"spaces", "exa mple.com", false},
		{"scheme prefix", "https://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDomain(tt.input); got != tt.expected {
				t.Errorf("IsDomain(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already registrable", "example.com", "example.com"},
		{"subdomain collapses", "deep.api.example.com", "example.com"},
		{"co.uk suffix", "www.example.co.uk", "example.co.uk"},
		{"unresolvable falls back", "localhost", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegistrableDomain(tt.input); got != tt.expected {
				t.Errorf("RegistrableDomain(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHasListedSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"com", "example.com", true},
		{"co.uk", "example.co.uk", true},
		{"internal name", "intranet.local", false},
		{"bare localhost", "localhost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasListedSuffix(tt.input); got != tt.expected {
				t.Errorf("HasListedSuffix(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsProxyAddr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"loopback with port", "127.0.0.1:8080", true},
		{"hostname with port", "burp.internal:9090", true},
		{"missing port", "127.0.0.1", false},
		{"empty host", ":8080", false},
		{"port zero", "127.0.0.1:0", false},
		{"port too large", "127.0.0.1:70000", false},
		{"non-numeric port", "127.0.0.1:http", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProxyAddr(tt.input); got != tt.expected {
				t.Errorf("IsProxyAddr(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
