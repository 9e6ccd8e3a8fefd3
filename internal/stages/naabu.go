package stages

// NaabuTool is the stage 3 binary: port scanning of resolved hosts.
const NaabuTool = "naabu"

const NaabuDescription = "Port scanning (top web ports)"

// WebPorts is the fixed web-relevant port set probed at stage 3.
const WebPorts = "80,443,8080,8443"

// NaabuArgs builds the port-scan command line. Hosts arrive on stdin.
func NaabuArgs() []string {
	return []string{"-p", WebPorts, "-nmap-cli", "-silent"}
}
