// Package buildconfig exposes build metadata stamped in with
// -ldflags "-X github.com/Harshitk-cp/tenantdesk/internal/buildconfig.version=...".
package buildconfig

var (
	version = "dev"
	commit  = "unknown"
)

const ServiceName = "tenantdesk"

type Info struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func Current() Info {
	return Info{Service: ServiceName, Version: version, Commit: commit}
}
