package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"CartDesk/internal/cart"
	"CartDesk/internal/config"
	"CartDesk/internal/directory"
	"CartDesk/internal/dispatch"
	"CartDesk/internal/session"
	"CartDesk/pkg/kit"
)

const service = "cartdesk"

const kindMalformedRequest dispatch.ErrorKind = "MalformedRequest"

type queryLine struct {
	ContextID string         `json:"contextID"`
	Function  string         `json:"function"`
	Content   map[string]any `json:"content"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           service,
		Short:         "Query the in-memory cart desk with JSON lines on stdin",
		Long:          "cartdesk reads one JSON query per line ({\"contextID\",\"function\",\"content\"}) from stdin and writes one JSON response per line to stdout. State lives only for the life of the process.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("max-logins", session.DefaultMaxLogins, "maximum number of live sessions")
	flags.String("gst-rate", "0.10", "tax rate applied to cart totals when GST is on")
	flags.Bool("metrics", false, "dump metrics to stderr on exit")
	flags.Bool("list", false, "print the user and product directory and exit")

	_ = v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))
	_ = v.BindPFlag("MAX_LOGINS", flags.Lookup("max-logins"))
	_ = v.BindPFlag("GST_RATE", flags.Lookup("gst-rate"))
	_ = v.BindPFlag("METRICS", flags.Lookup("metrics"))

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	dir := directory.NewDefault()

	if list, _ := cmd.Flags().GetBool("list"); list {
		return kit.WriteJSON(cmd.OutOrStdout(), map[string]any{
			"users":    dir.Users(),
			"products": dir.Products(),
		})
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	d := dispatch.New(dispatch.Deps{
		Directory: dir,
		Sessions:  session.NewMemStore(cfg.MaxLogins),
		Carts:     cart.NewStore(),
		Log:       log,
		Metrics:   kit.NewMetrics(reg),
		GSTRate:   cfg.GST,
	})

	err = kit.RunConsole(cmd.InOrStdin(), cmd.OutOrStdout(), handleLine(d), log)
	if err != nil {
		log.Error("console stopped", zap.Error(err))
		return err
	}

	if cfg.Metrics {
		if err := dumpMetrics(cmd.ErrOrStderr(), reg); err != nil {
			log.Warn("metrics dump failed", zap.Error(err))
		}
	}
	return nil
}

func handleLine(d *dispatch.Dispatcher) kit.LineHandler {
	return func(line []byte) any {
		var q queryLine
		if err := json.Unmarshal(line, &q); err != nil {
			return dispatch.Failure(kindMalformedRequest, fmt.Sprintf("bad json: %v", err))
		}
		return d.Query(q.ContextID, q.Function, q.Content)
	}
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
