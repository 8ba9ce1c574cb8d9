package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/sequence"
	"github.com/kbukum/seqkit/validation"
)

const (
	dimensionF = "dimension"
	formatF    = "format"
	limitF     = "limit"
	runIDF     = "run-id"

	dimensionUsage = "A comma separated dimension, e.g. -d A,B. Repeat for each dimension; " +
		"an empty value is an empty dimension."
	formatUsage = "Output format. Options: text, json"
	limitUsage  = "Stop after this many tuples. 0 prints all of them."
	runIDUsage  = "UUID identifying this run in logs. Generated when unset."

	formatText = "text"
	formatJSON = "json"

	productComponent = "product"
)

func newProductCmd(cfgFile *string) *cobra.Command {
	var (
		dims   []string
		format string
		limit  int
		runID  string
	)

	cmd := &cobra.Command{
		Use:   "product",
		Short: "Print the cartesian product of the given dimensions.",
		Long: `Print every combination that takes one value from each dimension, one tuple
per line. The last dimension varies fastest.

Dimensions come from repeated -d flags or from product.dimensions in the
configuration file.`,
		Example: "  seqkit product -d A,B -d 1,2\n  seqkit product -d A,B -d 1,2 --format json --limit 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed(dimensionF) {
				cfg.Product.Dimensions = parseDimensions(dims)
			}
			if flags.Changed(formatF) {
				cfg.Product.Format = format
			}
			if flags.Changed(limitF) {
				cfg.Product.Limit = limit
			}
			cfg.ApplyDefaults()
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := validation.New().OptionalUUID(runIDF, runID).Validate(); err != nil {
				return err
			}
			if runID == "" {
				runID = uuid.NewString()
			}

			log := logger.NewWithWriter(cmd.ErrOrStderr(), &cfg.Logging, cfg.Name).
				WithFields(logger.Fields(logger.FieldRunID, runID))
			logger.SetGlobalLogger(log)
			logger.Register(productComponent, log.WithComponent(productComponent))

			ctx := cmd.Context()
			shutdown, err := initTelemetry(ctx, cfg)
			if err != nil {
				return err
			}
			defer shutdown()

			return runProduct(ctx, cmd.OutOrStdout(), cfg.Product)
		},
	}

	cmd.Flags().StringArrayVarP(&dims, dimensionF, "d", nil, dimensionUsage)
	cmd.Flags().StringVar(&format, formatF, formatText, formatUsage)
	cmd.Flags().IntVar(&limit, limitF, 0, limitUsage)
	cmd.Flags().StringVar(&runID, runIDF, "", runIDUsage)
	return cmd
}

// parseDimensions splits each flag value on commas.
func parseDimensions(values []string) [][]string {
	dims := make([][]string, len(values))
	for i, v := range values {
		dims[i] = []string{}
		if strings.TrimSpace(v) == "" {
			continue
		}
		for _, item := range strings.Split(v, ",") {
			dims[i] = append(dims[i], strings.TrimSpace(item))
		}
	}
	return dims
}

// runProduct writes the product of cfg.Dimensions to out.
func runProduct(ctx context.Context, out io.Writer, cfg ProductConfig) error {
	log := logger.Get(productComponent)
	start := time.Now()

	dims := make([]*sequence.Sequence[string], len(cfg.Dimensions))
	for i, d := range cfg.Dimensions {
		dims[i] = sequence.FromSlice(d)
	}
	tuples, err := sequence.CartesianProductOf(ctx, dims...)
	if err != nil {
		return err
	}
	if cfg.Limit > 0 {
		tuples = sequence.Take(tuples, cfg.Limit)
	}

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		return err
	}
	count := 0
	tuples, err = sequence.Do(tuples, func([]string) { count++ })
	if err != nil {
		return err
	}
	if tuples, err = observability.Logged(tuples, log, "tuple"); err != nil {
		return err
	}
	if tuples, err = observability.Instrument(tuples, metrics, productComponent); err != nil {
		return err
	}
	if tuples, err = observability.Traced(tuples, observability.Tracer(serviceName), productComponent); err != nil {
		return err
	}

	write, err := tupleWriter(out, cfg.Format)
	if err != nil {
		return err
	}
	if err := sequence.Sink(tuples, func(_ context.Context, t []string) error {
		return write(t)
	}).Run(ctx); err != nil {
		log.Error("product failed", logger.ErrorFields(productComponent, err))
		return err
	}

	log.Info("product complete",
		logger.DurationFields(productComponent, time.Since(start)),
		logger.Fields(logger.FieldCount, count, "dimensions", len(dims)),
	)
	return nil
}

// tupleWriter returns a function writing one tuple per line in format.
// Text output separates values with tabs; json output is one array per line.
func tupleWriter(out io.Writer, format string) (func([]string) error, error) {
	switch format {
	case formatText:
		return func(t []string) error {
			_, err := fmt.Fprintln(out, strings.Join(t, "\t"))
			return err
		}, nil
	case formatJSON:
		enc := json.NewEncoder(out)
		return func(t []string) error {
			return enc.Encode(t)
		}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
