package tools

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/named-data/backdrop/std/log"
	"github.com/named-data/backdrop/std/types/arc"
	"github.com/named-data/backdrop/std/types/backdrop"
	"github.com/named-data/backdrop/std/utils/toolutils"
	"github.com/spf13/cobra"
)

var strategies = []string{"trivial", "goroutine", "worker", "queue", "limited"}

// Bench measures how long releasing the last handle of a large payload
// blocks the releasing goroutine for each disposal strategy.
type Bench struct {
	buffers    int
	size       int
	clones     int
	rounds     int
	strategies []string
	config     string
}

func CmdBench() *cobra.Command {
	b := Bench{}

	cmd := &cobra.Command{
		GroupID: "tools",
		Use:     "bench",
		Short:   "Measure release latency per disposal strategy",
		Long: `Allocate a large payload, share it, and time the release of the
last handle on the calling goroutine for each disposal strategy.`,
		Args:    cobra.NoArgs,
		Example: `  backdrop bench --buffers 4096 --strategy trivial,worker`,
		Run:     b.run,
	}

	cmd.Flags().IntVar(&b.buffers, "buffers", 1024, "number of buffers in the payload")
	cmd.Flags().IntVar(&b.size, "size", 4096, "size of each buffer, in bytes")
	cmd.Flags().IntVar(&b.clones, "clones", 8, "handles sharing the payload")
	cmd.Flags().IntVarP(&b.rounds, "rounds", "n", 20, "payloads allocated per strategy")
	cmd.Flags().StringSliceVarP(&b.strategies, "strategy", "s", strategies, "strategies to measure")
	cmd.Flags().StringVar(&b.config, "worker-config", "", "YAML configuration of the trash worker")
	return cmd
}

func (b *Bench) String() string {
	return "bench"
}

func (b *Bench) run(_ *cobra.Command, _ []string) {
	if b.rounds <= 0 || b.buffers < 0 || b.size < 0 || b.clones < 0 {
		log.Fatal(b, "Invalid bench parameters", "rounds", b.rounds, "buffers", b.buffers, "size", b.size, "clones", b.clones)
		return
	}
	if b.config != "" {
		config := backdrop.DefaultWorkerConfig()
		toolutils.MustReadYaml(&config, b.config)
		w, err := backdrop.NewWorker(config)
		if err != nil {
			log.Fatal(b, "Invalid worker configuration", "err", err)
			return
		}
		if prev := backdrop.SetDefaultWorker(w); prev != nil {
			prev.Stop(context.Background())
		}
	}

	p := toolutils.StatusPrinter{File: os.Stdout, Padding: 12}
	for _, name := range b.strategies {
		var lat []time.Duration
		switch strings.ToLower(name) {
		case "trivial":
			lat = measure[backdrop.Trivial](b)
		case "goroutine":
			lat = measure[backdrop.Goroutine](b)
		case "worker":
			lat = measure[backdrop.TrashWorker](b)
		case "queue":
			lat = measure[backdrop.TrashQueue](b)
			backdrop.CleanupTrash()
		case "limited":
			lat = measure[backdrop.Limited](b)
			if err := backdrop.WaitLimited(); err != nil {
				log.Error(b, "Limited disposal failed", "err", err)
			}
		default:
			log.Fatal(b, "Unknown strategy", "name", name, "known", strategies)
			return
		}

		p.Section(name)
		p.Print("rounds", len(lat))
		p.Print("mean", mean(lat))
		p.Print("p50", percentile(lat, 0.50))
		p.Print("p99", percentile(lat, 0.99))
		p.Print("max", slices.Max(lat))
	}

	stats := arc.Allocations()
	p.Section("allocations")
	p.Print("total", stats.Total)
	p.Print("live", stats.Live)
	p.Print("live_bytes", stats.LiveBytes)
	waitWorker(b)
}

// measure returns the time spent in the final Release of every round.
func measure[S backdrop.Strategy](b *Bench) []time.Duration {
	lat := make([]time.Duration, 0, b.rounds)
	for range b.rounds {
		u := arc.NewUnique[S](newFrame(b.buffers, b.size))
		a := u.Shareable()
		for _, c := range a.CloneMany(b.clones) {
			c.Release()
		}

		start := time.Now()
		a.Release()
		lat = append(lat, time.Since(start))
	}
	log.Debug(b, "Measured strategy", "strategy", fmt.Sprintf("%T", *new(S)), "rounds", b.rounds)
	return lat
}

func waitWorker(b *Bench) {
	w := backdrop.DefaultWorker()
	for w.Pending() > 0 {
		time.Sleep(time.Millisecond)
	}
	log.Debug(b, "Trash worker idle", "disposed", w.Disposed())
}
