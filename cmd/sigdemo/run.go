package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	ossignal "os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/saylorsolutions/signals/logging"
	"github.com/saylorsolutions/signals/monitor"
	"github.com/saylorsolutions/signals/signal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// limitRange is a low:high flag value, like --limits=-8:8.
type limitRange struct {
	low, high float64
	set       bool
}

var _ pflag.Value = (*limitRange)(nil)

func (r *limitRange) String() string {
	if !r.set {
		return ""
	}
	return fmt.Sprintf("%g:%g", r.low, r.high)
}

func (r *limitRange) Set(s string) error {
	lowStr, highStr, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("expected low:high, got %q", s)
	}
	low, err := strconv.ParseFloat(lowStr, 64)
	if err != nil {
		return fmt.Errorf("bad low bound %q: %w", lowStr, err)
	}
	high, err := strconv.ParseFloat(highStr, 64)
	if err != nil {
		return fmt.Errorf("bad high bound %q: %w", highStr, err)
	}
	if low > high {
		return fmt.Errorf("low bound %g is greater than high bound %g", low, high)
	}
	r.low, r.high, r.set = low, high, true
	return nil
}

func (r *limitRange) Type() string {
	return "low:high"
}

var (
	runTicks  int
	runLimits limitRange

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the tick and sample dispatch demo",
		Long: `Run dispatches a series of ticks over a signal. A generator handler turns each
tick into a noisy sine sample, a monitor node collects the samples, and values
outside the configured limits are reported as they happen. A summary of the
collected aggregates is printed at the end.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ticks") {
				cfg.Run.Ticks = runTicks
			}
			if runLimits.set {
				cfg.Limits.Enabled = true
				cfg.Limits.Low = runLimits.low
				cfg.Limits.High = runLimits.high
			}
			if cfg.Run.Ticks < 1 {
				return fmt.Errorf("nothing to do with %d ticks", cfg.Run.Ticks)
			}
			return runDemo(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
)

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 0, "Number of ticks to dispatch (overrides config)")
	runCmd.Flags().Var(&runLimits, "limits", "Expected sample range as low:high (overrides config)")
}

// interruptContext cancels when the user interrupts, and force-exits on a
// second interrupt so a stuck handler can't trap them.
func interruptContext(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	ossignal.Notify(sigs, os.Interrupt)
	go func() {
		defer cancel()
		<-sigs
		cancel()
		<-sigs
		os.Exit(1)
	}()
	return ctx
}

func runDemo(ctx context.Context, cfg *Config, out io.Writer) error {
	logger := logging.Logger("cmd.run")
	ctx = interruptContext(ctx)

	mgr := signal.NewManager()
	defer mgr.CloseAll()

	ticks := signal.New[func(int)]("demo.tick", mgr)
	node := monitor.NewNode[float64]("demo.sample", mgr)
	if cfg.Limits.Enabled {
		node.SetLimits(cfg.Limits.Low, cfg.Limits.High)
	}

	seed := cfg.Sample.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// The generator turns each tick into a sample: a sine sweep with noise on top.
	ticks.Attach(func(tick int) {
		angle := 2 * math.Pi * float64(tick) / float64(cfg.Run.Ticks)
		node.AddDatum(cfg.Sample.Amplitude*math.Sin(angle) + rng.NormFloat64()*cfg.Sample.Jitter)
	})

	// The counter doesn't care about the tick number, so attachment adapts it.
	dispatched := 0
	if _, err := ticks.AttachFunc(func() { dispatched++ }); err != nil {
		return err
	}

	// Reporting is packaged as an action, matched against the signal before attaching.
	report := signal.NewAction("report-sample", func(v float64) {
		fmt.Fprintf(out, "sample %8.2f\n", v)
	})
	if !node.OnDatum().Matches(report) {
		return fmt.Errorf("action %q does not fit signal %q", report.Name(), node.OnDatum().Name())
	}
	if _, err := node.OnDatum().AttachAction(report); err != nil {
		return err
	}
	node.OnLimit().Attach(func(_ float64) {
		fmt.Fprintf(out, "  ^ outside [%g, %g]\n", cfg.Limits.Low, cfg.Limits.High)
	})

	logger.Info().Int("ticks", cfg.Run.Ticks).Dur("interval", cfg.Run.Interval).Msg("Starting dispatch loop")
loop:
	for tick := 1; tick <= cfg.Run.Ticks; tick++ {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "interrupted")
			break loop
		case <-time.After(cfg.Run.Interval):
		}
		signal.Dispatch1(ticks, tick)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "dispatched %d ticks over signals: %s\n", dispatched, strings.Join(mgr.Names(), ", "))
	fmt.Fprintf(out, "samples: count=%d mean=%.2f min=%.2f max=%.2f stddev=%.2f\n",
		node.Count(), node.Mean(), node.Min(), node.Max(), node.StdDev())
	return nil
}
