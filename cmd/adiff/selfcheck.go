package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/adiff/dual"
	"github.com/born-ml/adiff/gradcheck"
	"github.com/born-ml/adiff/graph"
)

func newSelfcheckCmd() *cobra.Command {
	var (
		tol     float64
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Cross-check dual, forward-graph and reverse-graph gradients against finite differences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			defer func() { _ = logger.Sync() }()

			cfg := gradcheck.DefaultConfig()
			cfg.Tolerance = tol
			cfg.Logger = logger
			return runSelfcheck(cmd.OutOrStdout(), cases, cfg)
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", 1e-6, "absolute and relative tolerance")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every gradient component")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// runSelfcheck evaluates every case with all three differentiation methods
// and writes one line per case to w.
func runSelfcheck(w io.Writer, cs []testCase, cfg gradcheck.Config) error {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var failed int
	for _, tc := range cs {
		if err := checkCase(tc, cfg); err != nil {
			failed++
			log.Error("selfcheck failed", zap.String("case", tc.name), zap.Error(err))
			fmt.Fprintf(w, "FAIL  %s: %v\n", tc.name, err)
			continue
		}
		log.Info("selfcheck passed", zap.String("case", tc.name))
		fmt.Fprintf(w, "ok    %s\n", tc.name)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d cases failed", failed, len(cs))
	}
	return nil
}

func checkCase(tc testCase, cfg gradcheck.Config) error {
	dualGrad := dual.Gradient(tc.dual, tc.point)
	if _, err := gradcheck.Check(tc.plain, dualGrad, tc.point, cfg); err != nil {
		return errors.Wrap(err, "dual vs finite differences")
	}

	params := make([]*graph.Node, len(tc.point))
	for i, v := range tc.point {
		params[i] = graph.NamedParameter(fmt.Sprintf("x%d", i), v)
	}
	root := tc.graph(params)

	if err := gradcheck.Compare(dualGrad, graph.Grad(root, params...), cfg.Tolerance); err != nil {
		return errors.Wrap(err, "graph reverse vs dual")
	}
	if err := gradcheck.Compare(dualGrad, graph.ForwardGrad(root, params...), cfg.Tolerance); err != nil {
		return errors.Wrap(err, "graph forward vs dual")
	}
	return nil
}
