// Command tide runs technical indicators over candle data. A run is driven
// either by a YAML profile or entirely by flags, and writes its results as
// CSV.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rxtech-lab/tide/internal/datasource"
	"github.com/rxtech-lab/tide/internal/logger"
	"github.com/rxtech-lab/tide/internal/profile"
	"github.com/rxtech-lab/tide/internal/version"
	"github.com/rxtech-lab/tide/internal/writer"
	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/indicator"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func newLogger(verbose bool) (*logger.Logger, error) {
	if verbose {
		return logger.NewDebugLogger()
	}

	return logger.NewLogger()
}

// buildRunConfig resolves the indicator configuration and data/output paths
// from either the profile file or the flags.
func buildRunConfig(cmd *cli.Command, registry indicator.IndicatorRegistry[ohlcv.Candle]) (indicator.IndicatorConfig[ohlcv.Candle], string, string, error) {
	if profilePath := cmd.String("profile"); profilePath != "" {
		p, err := profile.LoadProfile(profilePath)
		if err != nil {
			return nil, "", "", err
		}

		config, err := profile.BuildConfig(p, registry)
		if err != nil {
			return nil, "", "", err
		}

		return config, p.Data, p.Output, nil
	}

	name := cmd.String("indicator")
	if name == "" {
		return nil, "", "", errors.New(errors.ErrCodeProfileInvalid, "either --profile or --indicator is required")
	}

	config, err := registry.GetIndicator(indicator.IndicatorType(name))
	if err != nil {
		return nil, "", "", err
	}

	for _, pair := range cmd.StringSlice("set") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, "", "", errors.Newf(errors.ErrCodeParseFailure, "invalid --set %q, expected name=value", pair)
		}

		if err := config.Set(key, value); err != nil {
			return nil, "", "", err
		}
	}

	return config, cmd.String("data"), cmd.String("output"), nil
}

// loadCandles reads the input series from the data file, or generates a
// synthetic one when --random is given.
func loadCandles(cmd *cli.Command, dataPath string) ([]ohlcv.Candle, error) {
	if count := cmd.Int("random"); count > 0 {
		generatorConfig := ohlcv.DefaultGeneratorConfig()
		generatorConfig.Count = int(count)

		generator := ohlcv.NewCandleGenerator(cmd.Int("seed"))

		return generator.Generate(generatorConfig), nil
	}

	if dataPath == "" {
		return nil, errors.New(errors.ErrCodeDataReadFailed, "no candle data: give --data, a profile data path, or --random")
	}

	return datasource.LoadCandles(dataPath)
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	l, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer l.Sync()

	registry := indicator.DefaultIndicatorRegistry[ohlcv.Candle]()

	config, dataPath, outputPath, err := buildRunConfig(cmd, registry)
	if err != nil {
		return err
	}

	if !config.Validate() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "invalid %s configuration", config.Name())
	}

	candles, err := loadCandles(cmd, dataPath)
	if err != nil {
		return err
	}

	l.Info("evaluating indicator",
		zap.String("indicator", string(config.Name())),
		zap.Int("candles", len(candles)))

	if len(candles) == 0 {
		l.Warn("empty candle series, nothing to evaluate")

		return nil
	}

	instance, err := config.Init(candles[0])
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(candles),
		progressbar.OptionSetDescription(fmt.Sprintf("Evaluating %s", config.Name())),
		progressbar.OptionShowCount())

	start := time.Now()
	results := make([]indicator.Result, 0, len(candles))

	for _, candle := range candles {
		results = append(results, instance.Next(candle))
		//nolint:errcheck // progress display only
		bar.Add(1)
	}

	l.Debug("evaluation finished", zap.Duration("elapsed", time.Since(start)))

	if outputPath == "" {
		outputPath = writer.DefaultOutputPath("results", config.Name())
	}

	resultWriter := writer.NewResultWriter(config)
	if err := resultWriter.WriteFile(outputPath, candles, results); err != nil {
		return err
	}

	l.Info("results written", zap.String("output", outputPath))

	return nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	registry := indicator.DefaultIndicatorRegistry[ohlcv.Candle]()

	for _, name := range registry.ListIndicators() {
		config, err := registry.GetIndicator(name)
		if err != nil {
			return err
		}

		rawCount, actionCount := config.Size()
		fmt.Printf("%-16s values=%d actions=%d\n", name, rawCount, actionCount)
	}

	return nil
}

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schema, err := profile.ToJSONSchema()
	if err != nil {
		return err
	}

	fmt.Println(schema)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "tide",
		Usage:   "Run streaming technical indicators over candle data",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Evaluate an indicator over a candle series and write the results as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "profile",
						Aliases: []string{"p"},
						Usage:   "Path to a YAML run profile",
					},
					&cli.StringFlag{
						Name:    "indicator",
						Aliases: []string{"i"},
						Usage:   "Indicator name to run (e.g. rsi, moving_average)",
					},
					&cli.StringSliceFlag{
						Name:  "set",
						Usage: "Parameter override in name=value form, repeatable",
					},
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "Path to the candle CSV file",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path the result CSV is written to",
					},
					&cli.IntFlag{
						Name:  "random",
						Usage: "Generate this many synthetic candles instead of reading a data file",
					},
					&cli.IntFlag{
						Name:  "seed",
						Usage: "Seed for the synthetic candle generator",
						Value: 42,
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable debug logging",
					},
				},
				Action: runAction,
			},
			{
				Name:   "list",
				Usage:  "List the available indicators and their result shapes",
				Action: listAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the run profile format",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
