package readings

import (
	"encoding/json"
	"os"

	"github.com/bornholm/readings/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramItem   = "item"
	paramPretty = "pretty"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Retrieve the readings of an item",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     paramItem,
				Aliases:  []string{"i"},
				Usage:    "Name of the item, i.e. 'Frozen Onion'",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  paramPretty,
				Usage: "Indent the json output",
				Value: false,
			},
		),
		Action: func(ctx *cli.Context) error {
			client, err := common.GetReadingsClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			result, err := client.GetReadings(ctx.Context, ctx.String(paramItem))
			if err != nil {
				return errors.WithStack(err)
			}

			encoder := json.NewEncoder(os.Stdout)
			if ctx.Bool(paramPretty) {
				encoder.SetIndent("", "  ")
			}

			if err := encoder.Encode(result); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
