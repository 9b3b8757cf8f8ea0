package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	response "settlement_console/internal/adapter/http/dto/response"
	"settlement_console/internal/app"
	"settlement_console/internal/infrastructure/config"
	"settlement_console/internal/infrastructure/logger"
	"settlement_console/internal/usecase"

	"github.com/bytedance/sonic"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

type globalFlags struct {
	configFile string
	logLevel   string
}

type importFlags struct {
	month    string
	category string
	metric   string
	insight  bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:           "opsctl",
		Short:         "Operate the settlement console from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.configFile, "config", "", "Read configuration from this .env or YAML file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Override LOG_LEVEL")

	var flags importFlags
	importCmd := &cobra.Command{
		Use:   "import <order|settlement|kpi|part> <file>",
		Short: "Import a batch from an xlsx, csv or html sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), g, func(a *app.App) error {
				return runImport(cmd.Context(), a, out, args[0], args[1], flags)
			})
		},
	}
	f := importCmd.Flags()
	f.StringVar(&flags.month, "month", "", "Target month, YYYY-MM")
	f.StringVar(&flags.category, "category", "", "Order type, settlement category or part type")
	f.StringVar(&flags.metric, "metric", "ALL", "KPI metric mode")
	f.BoolVar(&flags.insight, "insight", false, "Print the daily insight once the batch is in")
	_ = importCmd.MarkFlagRequired("month")

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the overview figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), g, func(a *app.App) error {
				return writeJSON(out, response.FromDashboard(a.Report.Dashboard(cmd.Context())))
			})
		},
	}

	var reportType string
	insightCmd := &cobra.Command{
		Use:       "insight [daily|report]",
		Short:     "Ask the summarizer for the daily insight or a report analysis",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"daily", "report"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := "daily"
			if len(args) == 1 {
				which = args[0]
			}
			return withApp(cmd.Context(), g, func(a *app.App) error {
				var text string
				if which == "report" {
					text = a.Insight.ReportAnalysis(cmd.Context(), reportType)
				} else {
					text = a.Insight.DailyInsight(cmd.Context())
				}
				_, err := fmt.Fprintln(out, text)
				return err
			})
		},
	}
	insightCmd.Flags().StringVar(&reportType, "type", "", "Report type named in the analysis prompt")

	root.AddCommand(importCmd, dashboardCmd, insightCmd)
	return root
}

func withApp(ctx context.Context, g globalFlags, fn func(a *app.App) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		cfg config.Config
		err error
	)
	if g.configFile != "" {
		cfg, err = config.LoadFile(g.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return codeError(3, "config: %s", err)
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return codeError(3, "logger: %s", err)
	}
	defer func() { _ = log.Sync() }()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return codeError(3, "bootstrap: %s", err)
	}
	return fn(a)
}

func runImport(ctx context.Context, a *app.App, out io.Writer, kind, path string, flags importFlags) error {
	file, err := os.Open(path)
	if err != nil {
		return codeError(3, "open %s: %s", path, err)
	}
	defer file.Close()

	var board *usecase.InsightBoard
	if flags.insight {
		board = usecase.NewInsightBoard()
		defer board.Close()
		stop := board.WatchStore(ctx, a.Store, a.Insight.DailyInsight)
		defer stop()
	}

	report, err := a.Import.ImportFile(ctx, usecase.ImportRequest{
		Kind:     strings.ToLower(kind),
		Month:    flags.month,
		Category: flags.category,
		Metric:   flags.metric,
	}, file)
	if err != nil {
		return codeError(2, "import: %s", err)
	}
	a.Logger.Debug("[import][cli] batch done", zap.Int("imported", report.Imported))

	if err := writeJSON(out, response.FromImportReport(report)); err != nil {
		return err
	}

	if board != nil {
		if text, loading := board.Current(); text == "" && !loading {
			// nothing watched changed, e.g. a KPI batch
			board.Refresh(ctx, a.Insight.DailyInsight)
		}
		board.Wait()
		text, _ := board.Current()
		if _, err := fmt.Fprintln(out, text); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
