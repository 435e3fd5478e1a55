package tour

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RunnerConfig holds runner construction parameters.
type RunnerConfig struct {
	// Out receives the narration transcript. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives diagnostics (topic start/finish). If nil, logs are
	// discarded so the transcript stays clean.
	Logger *slog.Logger

	// Registry collects per-topic metrics. If nil, a private registry is
	// created; pass one in to read the metrics back.
	Registry *prometheus.Registry
}

func (c *RunnerConfig) withDefaults() RunnerConfig {
	out := *c
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Logger == nil {
		out.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if out.Registry == nil {
		out.Registry = prometheus.NewRegistry()
	}
	return out
}

// Runner walks topics strictly in sequence. It does not recover from a
// panicking section: a fault in one demo aborts the whole tour.
type Runner struct {
	cfg      RunnerConfig
	sections *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRunner creates a Runner and registers its metrics on cfg.Registry.
// Runners sharing a registry share the same collectors.
func NewRunner(cfg RunnerConfig) *Runner {
	cfg = cfg.withDefaults()

	sections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "langtour",
		Name:      "sections_total",
		Help:      "Sections run, by topic.",
	}, []string{"topic"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "langtour",
		Name:      "topic_duration_seconds",
		Help:      "Wall time spent running each topic.",
		Buckets:   []float64{.001, .01, .1, .5, 1, 5},
	}, []string{"topic"})

	return &Runner{
		cfg:      cfg,
		sections: registerOrReuse(cfg.Registry, sections),
		duration: registerOrReuse(cfg.Registry, duration),
	}
}

// Registry returns the registry the runner reports to.
func (r *Runner) Registry() *prometheus.Registry { return r.cfg.Registry }

// Run visits each topic in order. A group banner is printed whenever the
// group changes; each section is preceded by its own banner.
func (r *Runner) Run(topics []Topic) {
	w := r.cfg.Out
	group := ""

	for i, t := range topics {
		if t.Group != "" && t.Group != group {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "--- %s ---\n", t.Group)
			group = t.Group
		}

		r.cfg.Logger.Info("topic started", "topic", t.Name, "sections", len(t.Sections))
		start := time.Now()

		for _, s := range t.Sections {
			fmt.Fprintf(w, "\n━━━ %s ━━━\n", s.Title)
			s.Run(w)
			r.sections.WithLabelValues(t.Name).Inc()
		}

		elapsed := time.Since(start)
		r.duration.WithLabelValues(t.Name).Observe(elapsed.Seconds())
		r.cfg.Logger.Info("topic finished", "topic", t.Name, "elapsed", elapsed)
	}
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
