package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
)

// Fetch holds asset fetch configuration
type Fetch struct {
	Manifest    string
	FailOnError bool
	NoColor     bool
}

// Flags returns CLI flags for fetch configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Aliases:     []string{"m"},
			Usage:       "Built-in asset manifest to download",
			Value:       model.DefaultManifestName,
			Destination: &c.Manifest,
			Sources:     cli.EnvVars("ASSETFETCH_MANIFEST"),
		},
		&cli.BoolFlag{
			Name:        "fail-on-error",
			Usage:       "Exit with non-zero status when any download fails",
			Value:       false,
			Destination: &c.FailOnError,
			Sources:     cli.EnvVars("ASSETFETCH_FAIL_ON_ERROR"),
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored status output",
			Value:       false,
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("ASSETFETCH_NO_COLOR"),
		},
	}
}
