package stages

import "strings"

// HttpxTool is the stage 4 binary: live HTTP(S) service probing. It is also
// reused by the proxy seeder after the chain completes.
const HttpxTool = "httpx"

const HttpxDescription = "Probing for live HTTP services"

const SeedDescription = "Seeding proxy traffic log"

// HttpxArgs builds the probe command line. httpx writes its rich detail
// output itself via -o; host:port lines arrive on stdin.
func HttpxArgs(detailsFile, proxyURL string) []string {
	args := []string{"-sc", "-cl", "-title", "-probe", "-silent", "-o", detailsFile}
	if proxyURL != "" {
		args = append(args, "-http-proxy", proxyURL)
	}
	return args
}

// HttpxSeedArgs builds the minimal re-probe used to populate the proxy's
// traffic log. The clean URL list is passed as a file argument, not stdin.
func HttpxSeedArgs(urlsFile, proxyURL string) []string {
	return []string{"-silent", "-http-proxy", proxyURL, "-l", urlsFile}
}

// ExtractURLs derives the clean URL list from httpx's rich detail output:
// the first whitespace-delimited token of every non-empty line.
func ExtractURLs(details string) []string {
	var urls []string
	for _, line := range strings.Split(details, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		urls = append(urls, fields[0])
	}
	return urls
}
