// Package version reports build metadata for seqkit binaries.
//
// Values are injected at link time and fall back to the VCS stamp Go embeds
// in the binary:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0" ./cmd/seqkit
package version
