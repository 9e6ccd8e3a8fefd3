package stages

// KatanaTool is the stage 5 binary: endpoint crawling of discovered URLs.
const KatanaTool = "katana"

const KatanaDescription = "Crawling for endpoints"

// KatanaArgs builds the crawl command line: JS parsing, automatic form fill,
// and all known-endpoint sources enabled. URLs arrive on stdin.
func KatanaArgs(proxyURL string) []string {
	args := []string{"-jc", "-aff", "-kf", "all", "-silent"}
	if proxyURL != "" {
		args = append(args, "-proxy", proxyURL)
	}
	return args
}
