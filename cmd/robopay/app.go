package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"github.com/warp/robot-pay/api"
	"github.com/warp/robot-pay/config"
	"github.com/warp/robot-pay/factory"
	"github.com/warp/robot-pay/payroll"
)

const defaultInputFile = "input.json"

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML config file",
	}
	strategyFlag = &cli.StringFlag{
		Name:  "strategy",
		Usage: "calculation strategy: segments or minute_sweep",
	}
	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Value:   defaultInputFile,
		Usage:   "path to the input JSON document",
	}
	breakdownFlag = &cli.BoolFlag{
		Name:    "breakdown",
		Aliases: []string{"b"},
		Usage:   "print paid minutes and pay per rate class",
	}
)

// newApp builds the CLI. Results go to out; usage errors and diagnostics go
// to errOut so they never mix with JSON output.
func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "robopay",
		Usage:     "price a robot work shift",
		Writer:    out,
		ErrWriter: errOut,
		Flags:     []cli.Flag{configFlag, strategyFlag},
		Commands:  []*cli.Command{payCommand, segmentsCommand, scenariosCommand},
	}
}

var payCommand = &cli.Command{
	Name:  "pay",
	Usage: "price the shift in an input document",
	Flags: []cli.Flag{inputFlag, breakdownFlag},
	Action: func(c *cli.Context) error {
		in, err := factory.ReadInputFile(c.String(inputFlag.Name))
		if err != nil {
			return err
		}
		return price(c, in)
	},
}

var segmentsCommand = &cli.Command{
	Name:  "segments",
	Usage: "list the uniform-rate segments of the shift in an input document",
	Flags: []cli.Flag{inputFlag},
	Action: func(c *cli.Context) error {
		in, err := factory.ReadInputFile(c.String(inputFlag.Name))
		if err != nil {
			return err
		}
		segs, err := payroll.Segments(in.Shift, in.Rates)
		if err != nil {
			return err
		}
		renderSegments(c.App.Writer, segs)
		return nil
	},
}

var scenariosCommand = &cli.Command{
	Name:  "scenarios",
	Usage: "list built-in demo shifts",
	Action: func(c *cli.Context) error {
		renderScenarios(c.App.Writer, api.Scenarios())
		return nil
	},
	Subcommands: []*cli.Command{
		{
			Name:      "run",
			Usage:     "price a built-in demo shift",
			ArgsUsage: "<id>",
			Flags:     []cli.Flag{breakdownFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("expected one scenario id, got %d", c.NArg())
				}
				s, err := api.FindScenario(c.Args().First())
				if err != nil {
					return err
				}
				in, err := s.Input()
				if err != nil {
					return err
				}
				return price(c, in)
			},
		},
	},
}

// price computes in with the configured calculator and prints the result.
func price(c *cli.Context, in factory.Input) error {
	calc, err := newCalculator(c)
	if err != nil {
		return err
	}

	b, err := calc.Compute(in.Shift, in.Rates)
	if err != nil {
		return err
	}

	if c.Bool(breakdownFlag.Name) {
		renderBreakdown(c.App.Writer, b, in.Rates)
		return nil
	}
	return json.NewEncoder(c.App.Writer).Encode(factory.ToResultJSON(b.Total.Value))
}

func newCalculator(c *cli.Context) (payroll.Calculator, error) {
	cfg, err := config.Load(c.String(configFlag.Name))
	if err != nil {
		return payroll.Calculator{}, err
	}
	if s := c.String(strategyFlag.Name); s != "" {
		cfg.Calculator.Strategy = s
	}
	return cfg.NewCalculator()
}
