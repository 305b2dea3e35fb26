// Command castmatch solves a role-casting roster: it reads a JSON
// roster document, computes the utility-maximizing assignment, and
// prints the casting with per-rank statistics.
//
// Usage:
//
//	castmatch solve --input roster.json [--scoring linear|weighted]
//	                [--algorithm exact|exhaustive] [--max-rank N]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nkorolko/castmatch/assign"
	"github.com/nkorolko/castmatch/report"
	"github.com/nkorolko/castmatch/roster"
	"github.com/nkorolko/castmatch/score"
)

func main() {
	app := &cli.App{
		Name:  "castmatch",
		Usage: "Optimal role casting from ranked preferences",
		Commands: []*cli.Command{
			solveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var solveCmd = &cli.Command{
	Name:    "solve",
	Usage:   "Solve a roster file and print the casting",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "roster document (JSON: roles + participant rankings)",
		},
		&cli.StringFlag{
			Name:  "scoring",
			Value: "linear",
			Usage: "scoring policy: linear or weighted",
		},
		&cli.StringFlag{
			Name:  "algorithm",
			Value: "exact",
			Usage: "solver: exact (Kuhn–Munkres) or exhaustive (n ≤ 8)",
		},
		&cli.IntFlag{
			Name:  "max-rank",
			Value: 0,
			Usage: "flag participants assigned beyond this rank (0 = no check)",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			input   = ctx.String("input")
			maxRank = ctx.Int("max-rank")
		)
		if maxRank < 0 {
			return errors.New("invalid max-rank")
		}
		policy, err := score.Parse(ctx.String("scoring"))
		if err != nil {
			return err
		}
		algo, err := assign.ParseAlgorithm(ctx.String("algorithm"))
		if err != nil {
			return err
		}

		return doSolve(input, policy, algo, maxRank)
	},
}

func doSolve(input string, policy score.Policy, algo assign.Algorithm, maxRank int) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	rst, err := roster.DecodeJSON(f)
	if err != nil {
		return err
	}

	res, err := assign.Solve(rst, policy, algo)
	if err != nil {
		return err
	}

	fmt.Print(report.Render(res, policy))

	if maxRank > 0 {
		satisfied, violations := assign.CheckConstraints(res, maxRank)
		fmt.Print(report.RenderConstraints(satisfied, violations, maxRank))
	}

	return nil
}
