package stages

// SubfinderTool is the stage 1 binary: subdomain enumeration.
const SubfinderTool = "subfinder"

// SubfinderDescription is shown in the stage header.
const SubfinderDescription = "Enumerating subdomains"

// SubfinderArgs builds the enumeration command line. The target is a command
// argument; this is the only stage that takes no standard input.
func SubfinderArgs(target string) []string {
	return []string{"-d", target, "-silent"}
}
