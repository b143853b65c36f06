// Package buildinfo holds version information injected at build time, e.g.
//
//	go build -ldflags "-X github.com/watchfire-io/abacus/internal/buildinfo.Version=1.2.0" ./cmd/abacus
package buildinfo

var (
	Version    = "dev"
	Codename   = "Tally"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
