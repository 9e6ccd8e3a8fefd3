package stages

// DnsxTool is the stage 2 binary: DNS resolution of candidate subdomains.
const DnsxTool = "dnsx"

const DnsxDescription = "Resolving active subdomains"

// DnsxArgs builds the resolution command line. Input hosts arrive on stdin,
// one per line.
func DnsxArgs() []string {
	return []string{"-silent"}
}
