package nextrip

import (
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "print the departures served by the nextrip endpoint",
		Action: func(c *cli.Context) error {
			if err := LoadFixtures(); err != nil {
				return err
			}

			departures, err := Fixtures()
			if err != nil {
				return err
			}

			pretty.Fprintf(c.App.Writer, "%# v\n", departures)

			return nil
		},
	}
}
