// Package stages defines the five external tools of the reconnaissance chain
// and the argument sets they are invoked with. Each tool is an opaque
// executable; only its command line and line-oriented output contract live here.
package stages

import "os"

// Chain order. Stage numbers are 1-based in all user-facing output.
const (
	Enumerate = iota + 1
	Resolve
	Scan
	Probe
	Crawl
)

// TotalSteps includes the optional proxy-seeding step shown as 6/6.
const TotalSteps = 6

// ProxyEnv returns the calling process's environment extended with proxy
// variables for both schemes. Only the HTTP-speaking stages (probe, crawl,
// seed) receive it; the DNS/TCP stages never see proxy configuration.
func ProxyEnv(proxyURL string) []string {
	return append(os.Environ(),
		"HTTP_PROXY="+proxyURL,
		"HTTPS_PROXY="+proxyURL,
	)
}
