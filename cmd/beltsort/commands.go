package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/beltsort/internal/adapters/fs"
	"github.com/bft-labs/beltsort/internal/adapters/output"
	"github.com/bft-labs/beltsort/internal/domain"
	"github.com/bft-labs/beltsort/pkg/log"
	"github.com/bft-labs/beltsort/pkg/sorter"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route <color>",
		Short: "Print the belt for one color category",
		Example: `  beltsort route black        # prints A
  beltsort route green        # exits 1: unrecognized category`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignment := a.sorter.Route(args[0])
			if assignment.Err != nil {
				return assignment.Err
			}
			if a.cfg.Output == output.FormatText {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), assignment.Belt)
				return err
			}
			return writeAll(a.cfg.Output, cmd.OutOrStdout(), []sorter.Assignment{assignment})
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Route one label per line from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open labels: %w", err)
				}
				defer f.Close()
				in = f
			}

			labels, err := sorter.ReadLabels(in)
			if err != nil {
				return err
			}
			assignments, err := a.sorter.RouteBatch(cmd.Context(), labels)
			if err != nil {
				return fmt.Errorf("route batch: %w", err)
			}
			if err := writeAll(a.cfg.Output, cmd.OutOrStdout(), assignments); err != nil {
				return err
			}

			summary := sorter.Summarize(assignments)
			logSummary(a.logger, summary)
			if a.cfg.Strict && summary.Rejected > 0 {
				return fmt.Errorf("%d of %d objects rejected", summary.Rejected, summary.Total())
			}
			return nil
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Follow a label feed file and route each new line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sink, err := output.New(a.cfg.Output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			feed, err := fs.NewFileFeed(ctx, args[0], fs.FeedOptions{
				Debounce: a.cfg.Debounce,
				FromEnd:  a.cfg.FromEnd,
			}, a.logger)
			if err != nil {
				return err
			}
			defer feed.Close()

			summary, err := a.sorter.Follow(ctx, feed, sink)
			logSummary(a.logger, summary)
			return err
		},
	}
	cmd.Flags().DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "quiet period after a write before reading the feed")
	cmd.Flags().BoolVar(&a.cfg.FromEnd, "from-end", a.cfg.FromEnd, "skip labels already in the file")
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the routing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := domain.Table()
			w := cmd.OutOrStdout()
			switch a.cfg.Output {
			case output.FormatJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(table)
			case output.FormatYAML:
				enc := yaml.NewEncoder(w)
				if err := enc.Encode(table); err != nil {
					return err
				}
				return enc.Close()
			default:
				for _, row := range table {
					if _, err := fmt.Fprintf(w, "%-12s -> %s\n", row.Color, row.Belt); err != nil {
						return err
					}
				}
				return nil
			}
		},
	}
}

func writeAll(format string, w io.Writer, assignments []sorter.Assignment) error {
	sink, err := output.New(format, w)
	if err != nil {
		return err
	}
	for _, as := range assignments {
		if err := sink.Write(as); err != nil {
			return fmt.Errorf("write assignment: %w", err)
		}
	}
	return sink.Flush()
}

func logSummary(logger log.Logger, s sorter.Summary) {
	fields := []log.Field{
		log.Int("routed", s.Routed),
		log.Int("rejected", s.Rejected),
	}
	for _, b := range domain.Belts() {
		fields = append(fields, log.Int("belt_"+b.String(), s.PerBelt[b]))
	}
	logger.Info("sorting summary", fields...)
}
