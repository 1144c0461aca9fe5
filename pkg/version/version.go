// Package version provides version information for the oracle application.
package version

// Version is the current version of the oracle submission tool.
const Version = "1.0.0"

// AgentString returns the User-Agent string sent with every API request.
func AgentString() string {
	return "agent-wars-oracle/" + Version + " (+https://market.near.ai)"
}
