package stages

import (
	"reflect"
	"strings"
	"testing"
)

func TestSubfinderArgs(t *testing.T) {
	expected := []string{"-d", "example.com", "-silent"}
	if got := SubfinderArgs("example.com"); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestDnsxArgs(t *testing.T) {
	expected := []string{"-silent"}
	if got := DnsxArgs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestNaabuArgs(t *testing.T) {
	expected := []string{"-p", "80,443,8080,8443", "-nmap-cli", "-silent"}
	if got := NaabuArgs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestHttpxArgs(t *testing.T) {
	tests := []struct {
		name     string
		proxyURL string
		expected []string
	}{
		{
			name:     "without proxy",
			expected: []string{"-sc", "-cl", "-title", "-probe", "-silent", "-o", "out/details.txt"},
		},
		{
			name:     "with proxy",
			proxyURL: "http://127.0.0.1:8080",
			expected: []string{"-sc", "-cl", "-title", "-probe", "-silent", "-o", "out/details.txt", "-http-proxy", "http://127.0.0.1:8080"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HttpxArgs("out/details.txt", tt.proxyURL)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHttpxSeedArgs(t *testing.T) {
	expected := []string{"-silent", "-http-proxy", "http://127.0.0.1:8080", "-l", "out/urls.txt"}
	got := HttpxSeedArgs("out/urls.txt", "http://127.0.0.1:8080")
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestKatanaArgs(t *testing.T) {
	tests := []struct {
		name     string
		proxyURL string
		expected []string
	}{
		{
			name:     "without proxy",
			expected: []string{"-jc", "-aff", "-kf", "all", "-silent"},
		},
		{
			name:     "with proxy",
			proxyURL: "http://127.0.0.1:8080",
			expected: []string{"-jc", "-aff", "-kf", "all", "-silent", "-proxy", "http://127.0.0.1:8080"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KatanaArgs(tt.proxyURL)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name     string
		details  string
		expected []string
	}{
		{
			name:     "first token per line",
			details:  "https://a.com 200 1234 Title Here\nhttps://b.com 403 0 Forbidden\n",
			expected: []string{"https://a.com", "https://b.com"},
		},
		{
			name:     "blank lines skipped",
			details:  "https://a.com 200\n\n   \nhttps://b.com 301\n",
			expected: []string{"https://a.com", "https://b.com"},
		},
		{
			name:     "line without fields beyond url",
			details:  "https://only.example.com\n",
			expected: []string{"https://only.example.com"},
		},
		{
			name:     "empty input",
			details:  "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractURLs(tt.details)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestProxyEnv(t *testing.T) {
	env := ProxyEnv("http://127.0.0.1:8080")

	var httpSet, httpsSet bool
	for _, kv := range env {
		switch kv {
		case "HTTP_PROXY=http://127.0.0.1:8080":
			httpSet = true
		case "HTTPS_PROXY=http://127.0.0.1:8080":
			httpsSet = true
		}
	}
	if !httpSet || !httpsSet {
		t.Errorf("proxy env missing variables: HTTP=%v HTTPS=%v", httpSet, httpsSet)
	}

	// the process environment is carried along, not replaced
	if len(env) < 2 {
		t.Error("expected inherited environment plus proxy variables")
	}

	var pathInherited bool
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			pathInherited = true
			break
		}
	}
	if !pathInherited {
		t.Error("PATH should be inherited into the stage environment")
	}
}
