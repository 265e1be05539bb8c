package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/paw-chain/pawswap/pkg/sandbox"
	"github.com/paw-chain/pawswap/pkg/telemetry"
	"github.com/paw-chain/pawswap/x/amm/types"
)

const (
	flagMetricsPort  = "metrics-port"
	flagOTLPEndpoint = "otlp-endpoint"
	flagSampleRate   = "sample-rate"
)

// SimulateCmd replays a scenario file on an in-memory chain.
func SimulateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [scenario.yaml]",
		Short: "Replay a liquidity scenario on an in-memory chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			scenario, err := LoadScenario(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			provider, err := telemetry.NewProvider(ctx, telemetry.Config{
				OTLPEndpoint: v.GetString(flagOTLPEndpoint),
				SampleRate:   v.GetFloat64(flagSampleRate),
				Environment:  "sandbox",
				Prometheus:   v.GetInt(flagMetricsPort) > 0,
			})
			if err != nil {
				return err
			}
			defer func() {
				if err := provider.Shutdown(context.Background()); err != nil {
					logger.Error("failed to shut down telemetry", "error", err)
				}
			}()

			if err := RunScenario(ctx, logger, provider.Meter("pawswap/simulate"), scenario, cmd.OutOrStdout()); err != nil {
				return err
			}

			if port := v.GetInt(flagMetricsPort); port > 0 {
				server := StartPrometheusServer(port, logger)
				logger.Info("serving metrics until interrupted", "port", port)
				<-ctx.Done()
				return server.Shutdown(context.Background())
			}
			return nil
		},
	}

	cmd.Flags().Int(flagMetricsPort, 0, "serve Prometheus metrics on this port after the run (0 disables)")
	cmd.Flags().String(flagOTLPEndpoint, "", "OTLP/HTTP endpoint for traces (empty disables tracing)")
	cmd.Flags().Float64(flagSampleRate, 1, "trace sample rate between 0 and 1")

	return cmd
}

// RunScenario executes every step of s on a fresh sandbox chain and writes
// one line per step followed by the final pools to w. A step fails the run
// when its outcome does not match ExpectError. Step latencies are recorded
// on meter as pawswap.simulate.step.duration.
func RunScenario(ctx context.Context, logger log.Logger, meter metric.Meter, s *Scenario, w io.Writer) error {
	stepDuration, err := meter.Float64Histogram(
		"pawswap.simulate.step.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Wall time of a scenario step, by operation and outcome"),
	)
	if err != nil {
		return fmt.Errorf("failed to create step histogram: %w", err)
	}

	opts := sandbox.Options{Logger: logger}
	if s.Authority != "" {
		opts.Authority = AccountAddress(s.Authority)
	}
	chain, err := sandbox.New(opts)
	if err != nil {
		return err
	}
	chain.Ctx = chain.Ctx.WithContext(ctx)

	if s.FeeBps != nil {
		params := types.Params{SwapFeeBps: *s.FeeBps}
		if err := params.Validate(); err != nil {
			return err
		}
		if err := chain.AMM.SetParams(chain.Ctx, params); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(s.Accounts))
	for name := range s.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		balances := s.Accounts[name]
		assets := make([]string, 0, len(balances))
		for asset := range balances {
			assets = append(assets, asset)
		}
		sort.Strings(assets)
		for _, asset := range assets {
			amount, err := toAmount(name+"."+asset, balances[asset])
			if err != nil {
				return err
			}
			if err := chain.FundAccount(AccountAddress(name), asset, amount); err != nil {
				return fmt.Errorf("failed to fund %s: %w", name, err)
			}
		}
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		result, err := runStep(chain, step)
		stepDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("op", step.Op),
			attribute.Bool("failed", err != nil),
		))

		switch {
		case err != nil && !step.ExpectError:
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		case err == nil && step.ExpectError:
			return fmt.Errorf("step %d (%s): expected an error, got %s", i, step.Op, result)
		case err != nil:
			result = "error: " + err.Error()
		}
		if _, err := fmt.Fprintf(w, "%d %s %s\n", i, step.Op, result); err != nil {
			return err
		}

		if msg, broken := chain.CheckInvariants(); broken {
			return fmt.Errorf("step %d (%s) broke an invariant: %s", i, step.Op, msg)
		}
	}

	pools, err := chain.AMM.GetAllPools(chain.Ctx)
	if err != nil {
		return err
	}
	for _, pool := range pools {
		if _, err := fmt.Fprintf(w, "pool %s\n", pool); err != nil {
			return err
		}
	}
	return nil
}

func runStep(chain *sandbox.Chain, step Step) (string, error) {
	var who sdk.AccAddress
	if step.Account != "" {
		who = AccountAddress(step.Account)
	}
	assetA, assetB := types.AssetID(step.AssetA), types.AssetID(step.AssetB)

	switch step.Op {
	case StepAddLiquidity:
		amountA, err := toAmount("amount_a", step.AmountA)
		if err != nil {
			return "", err
		}
		amountB, err := toAmount("amount_b", step.AmountB)
		if err != nil {
			return "", err
		}
		lp, err := chain.AMM.AddLiquidity(chain.Ctx, who, assetA, assetB, amountA, amountB)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("minted=%s", lp), nil

	case StepRemoveLiquidity:
		lp, err := toAmount("amount", step.Amount)
		if err != nil {
			return "", err
		}
		outA, outB, err := chain.AMM.RemoveLiquidity(chain.Ctx, who, assetA, assetB, lp)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s=%s %s=%s", assetA, outA, assetB, outB), nil

	case StepSwapExactIn:
		amountIn, err := toAmount("amount", step.Amount)
		if err != nil {
			return "", err
		}
		minOut, err := toAmount("limit", step.Limit)
		if err != nil {
			return "", err
		}
		out, err := chain.AMM.SwapExactInForOut(chain.Ctx, who, assetA, assetB, amountIn, minOut)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("in=%s out=%s", amountIn, out), nil

	case StepSwapExactOut:
		amountOut, err := toAmount("amount", step.Amount)
		if err != nil {
			return "", err
		}
		if step.Limit == nil {
			return "", fmt.Errorf("limit is required for %s", step.Op)
		}
		maxIn, err := toAmount("limit", step.Limit)
		if err != nil {
			return "", err
		}
		in, err := chain.AMM.SwapInForExactOut(chain.Ctx, who, assetA, assetB, maxIn, amountOut)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("in=%s out=%s", in, amountOut), nil

	case StepSetFee:
		bps, err := toFeeBps(step.FeeBps)
		if err != nil {
			return "", err
		}
		if err := chain.AMM.SetFee(chain.Ctx, who, bps); err != nil {
			return "", err
		}
		return fmt.Sprintf("fee_bps=%d", bps), nil

	case StepOracle:
		rate, err := chain.AMM.PriceOracle(chain.Ctx, assetA, assetB)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("rate=%s", rate), nil

	case StepCommit:
		id := chain.Commit()
		return fmt.Sprintf("version=%d hash=%X", id.Version, id.Hash), nil
	}

	return "", fmt.Errorf("unknown op %q", step.Op)
}
