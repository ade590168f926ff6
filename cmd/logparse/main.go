package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/danlonngren/log-parser/internal/config"
	"github.com/danlonngren/log-parser/internal/output"
	"github.com/danlonngren/log-parser/internal/scan"
	"github.com/danlonngren/log-parser/pkg/matcher"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	app := &cli.App{
		Name:      "logparse",
		Usage:     "scan a log file for lines matching keyword expressions or regexes",
		ArgsUsage: "PATTERN [PATTERN...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "path to the log file", Required: true},
			&cli.BoolFlag{Name: "ignore-case", Aliases: []string{"i"}, Usage: "case-insensitive matching"},
			&cli.BoolFlag{Name: "regex", Aliases: []string{"r"}, Usage: "treat patterns as regular expressions"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write matches to this file, or into this directory with a timestamped name"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML file with default options"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(c *cli.Context, log *logrus.Logger) error {
	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		return fmt.Errorf("no pattern given; pass at least one expression or regex")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	// flags win, the config file only fills in what the user left unset
	ignoreCase := cfg.IgnoreCase
	if c.IsSet("ignore-case") {
		ignoreCase = c.Bool("ignore-case")
	}
	regexMode := cfg.Regex
	if c.IsSet("regex") {
		regexMode = c.Bool("regex")
	}
	outTarget := cfg.Output
	if c.IsSet("output") {
		outTarget = c.String("output")
	}

	m, err := buildMatcher(patterns, regexMode, ignoreCase, cfg, log)
	if err != nil {
		return err
	}

	logPath := c.String("file")
	matches, err := scan.New(m, log).File(logPath)
	if err != nil {
		return err
	}

	// stdout first, so results survive an output-path failure
	output.Print(os.Stdout, matches)

	if outTarget != "" {
		path := output.ResolvePath(outTarget, logPath, time.Now())
		if err := output.WriteFile(path, patterns, matches); err != nil {
			return err
		}
		log.WithField("file", path).Info("results written")
	}

	return nil
}

func buildMatcher(patterns []string, regexMode, ignoreCase bool, cfg *config.Config, log *logrus.Logger) (matcher.Matcher, error) {
	if regexMode {
		return matcher.NewRegexMatcher(patterns, ignoreCase)
	}
	m, err := matcher.NewExpressionMatcherWithConfig(patterns, ignoreCase, cfg.PrefilterConfig())
	if err != nil {
		return nil, err
	}
	log.WithField("strategy", m.Prefilter().Stats().StrategyName()).Debug("prefilter")
	return m, nil
}
