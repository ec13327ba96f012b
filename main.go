package main

import "github.com/mrlokans/bookcafe/internal/cli"

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.SetBuildInfo(Version, Commit)
	cli.Execute()
}
