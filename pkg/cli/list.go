package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
)

func cmdList(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Show built-in manifests and their destinations",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, name := range model.ManifestNames() {
				manifest, err := model.LookupManifest(name)
				if err != nil {
					return err
				}

				suffix := ""
				if name == model.DefaultManifestName {
					suffix = " (default)"
				}
				fmt.Fprintf(stdout, "%s%s\n", name, suffix)
				for _, task := range manifest.Tasks {
					fmt.Fprintf(stdout, "  %-16s %s\n", task.Label, manifest.Destination(task))
				}
			}
			return nil
		},
	}
}
