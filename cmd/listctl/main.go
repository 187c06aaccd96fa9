package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"

	"github.com/outofforest/container/list"
	"github.com/outofforest/container/ops"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config

	rootCmd := &cobra.Command{
		Use:   "listctl",
		Short: "Builds a list and applies operations to it",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := ops.ParseAll(cfg.Operations)
			if err != nil {
				return err
			}

			l := list.NewWithConfig(list.Config{NodesPerBatch: cfg.NodesPerBatch}, cfg.Values...)
			return parallel.Run(cmd.Context(), func(ctx context.Context, spawn parallel.SpawnFn) error {
				spawn("apply", parallel.Continue, func(ctx context.Context) error {
					if err := ops.Apply(ctx, l, o...); err != nil {
						return err
					}

					result := lo.Map(slices.Collect(l.Values()), func(v int, _ int) string {
						return strconv.Itoa(v)
					})
					logger.Get(ctx).Info("Operations applied", zap.Int("length", len(result)))
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "["+strings.Join(result, ", ")+"]")
					return err
				})
				return nil
			})
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	registerFlags(rootCmd.Flags(), &cfg)
	return rootCmd
}

type config struct {
	Values        []int
	Operations    []string
	NodesPerBatch uint64
}

func registerFlags(flags *pflag.FlagSet, cfg *config) {
	flags.IntSliceVar(&cfg.Values, "values", nil, "Initial values of the list")
	flags.StringArrayVar(&cfg.Operations, "op", nil,
		"Operation to apply: insert-start:V, insert-end:V, insert-after:T=V, pop:P, remove:V, remove-all:V")
	flags.Uint64Var(&cfg.NodesPerBatch, "batch", list.DefaultConfig.NodesPerBatch, "Number of nodes allocated at once")
}
