// datalens-cli inspects tabular files from the terminal: print a summary
// report or render charts without starting the dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"datalens/domain/chart"
	"datalens/internal/analyzer"
)

func main() {
	app := &cli.App{
		Name:  "datalens-cli",
		Usage: "summarize and chart CSV/Excel files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "outputs",
				Value: "outputs",
				Usage: "directory for saved charts",
			},
		},
		Commands: []*cli.Command{
			newSummarizeCmd(),
			newChartCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSummarizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "summarize",
		Usage:     "print a summary report for a file",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one file argument", 2)
			}
			an, err := analyzer.New(c.Args().First(), c.String("outputs"))
			if err != nil {
				return err
			}
			fmt.Print(an.Summarize().Text())
			return nil
		},
	}
}

func newChartCmd() *cli.Command {
	var kind, column string
	var topN, bins int
	var save bool

	return &cli.Command{
		Name:      "chart",
		Usage:     "render a chart from a column",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Value:       string(chart.KindBar),
				Usage:       "bar_chart, pie_chart, or histogram",
				Destination: &kind,
			},
			&cli.StringFlag{
				Name:        "column",
				Required:    true,
				Destination: &column,
			},
			&cli.IntFlag{
				Name:        "top",
				Usage:       "top N categories for bar/pie charts",
				Destination: &topN,
			},
			&cli.IntFlag{
				Name:        "bins",
				Usage:       "bin count for histograms",
				Destination: &bins,
			},
			&cli.BoolFlag{
				Name:        "save",
				Usage:       "persist the PNG under the outputs directory",
				Destination: &save,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one file argument", 2)
			}
			an, err := analyzer.New(c.Args().First(), c.String("outputs"))
			if err != nil {
				return err
			}

			var art *chart.Artifact
			switch chart.Kind(kind) {
			case chart.KindBar:
				art, err = an.BarChart(column, topN, save)
			case chart.KindPie:
				art, err = an.PieChart(column, topN, save)
			case chart.KindHistogram:
				art, err = an.Histogram(column, bins, save)
			default:
				return cli.Exit(fmt.Sprintf("unknown chart kind %q", kind), 2)
			}
			if err != nil {
				return err
			}

			if save {
				fmt.Printf("saved %s\n", art.Filename())
			} else {
				fmt.Printf("rendered %s (%d bytes, not saved)\n", art.Filename(), len(art.PNG))
			}
			return nil
		},
	}
}
