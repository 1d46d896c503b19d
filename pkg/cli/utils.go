package cli

import "github.com/urfave/cli/v3"

// flagSource is a config struct that declares its own CLI flags
type flagSource interface {
	Flags() []cli.Flag
}

// flagsOf collects the flags of several config structs, keeping their order
func flagsOf(sources ...flagSource) []cli.Flag {
	var result []cli.Flag
	for _, src := range sources {
		result = append(result, src.Flags()...)
	}
	return result
}
