// hostsnap prints a point-in-time snapshot of the local host: identity,
// CPU health, memory, disk, per-interface network rates, the selected
// uplink, and running containers.
//
// Usage:
//
//	hostsnap [flags]
//
// Flags:
//
//	-interval float  Refresh every N seconds (0 takes one snapshot and exits)
//	-no-clear        Do not clear the screen between refreshes
//	-config string   Path to config file (default: $HOSTSNAP_CONFIG or ~/.config/hostsnap/config.yaml)
//	-disk string     Volume to report usage for
//	-version         Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/nhdewitt/hostsnap/internal/collector"
	"github.com/nhdewitt/hostsnap/internal/config"
	"github.com/nhdewitt/hostsnap/internal/render"
	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func main() {
	interval := flag.Float64("interval", 0, "Refresh every N seconds (0 takes one snapshot and exits)")
	noClear := flag.Bool("no-clear", false, "Do not clear the screen between refreshes")
	configPath := flag.String("config", "", "Path to config file")
	diskPath := flag.String("disk", "", "Volume to report usage for")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("hostsnap %s (%s)\n", version, commit)
		os.Exit(0)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags win over file and environment, but only when actually set:
	// an explicit -interval 0 must force single-snapshot mode even when
	// the file asks for a refresh loop.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			cfg.IntervalSeconds = *interval
		case "no-clear":
			cfg.NoClear = *noClear
		case "disk":
			cfg.DiskPath = *diskPath
		}
	})
	if cfg.IntervalSeconds < 0 {
		cfg.IntervalSeconds = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nReceived termination signal. Shutting down...")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("hostsnap: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	sys := collector.NewSystem()
	src := snapshot.Sources{
		Host:      sys,
		CPU:       sys,
		Memory:    sys,
		Disk:      sys,
		Counters:  sys,
		Route:     sys,
		Processes: sys,
	}
	if !cfg.NoContainers {
		src.Containers = collector.NewDocker()
	}

	bcfg := snapshot.Config{
		DiskPath:   cfg.DiskPath,
		CPUWindow:  time.Duration(cfg.CPUWindowSeconds * float64(time.Second)),
		NetWindow:  time.Duration(cfg.NetWindowSeconds * float64(time.Second)),
		Exclusions: cfg.Exclusions(),
	}
	interval := time.Duration(cfg.IntervalSeconds * float64(time.Second))

	for {
		start := time.Now()

		snap, err := snapshot.Build(ctx, src, bcfg)
		if err != nil {
			// Build only fails on cancellation; the notice was already
			// printed by the signal handler.
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := render.Render(os.Stdout, snap, renderOptions(cfg, interval)); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}

		if interval <= 0 {
			return nil
		}

		timer := time.NewTimer(nextSleep(interval, time.Since(start)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// nextSleep keeps the cadence close to the requested interval. A cycle
// that ran longer than the interval starts the next one immediately,
// never concurrently.
func nextSleep(interval, elapsed time.Duration) time.Duration {
	sleep := interval - elapsed
	if sleep < 0 {
		return 0
	}
	return sleep
}

// renderOptions decides presentation per cycle, so a resized terminal is
// picked up on the next refresh. Clearing only happens in refresh mode
// on a real terminal.
func renderOptions(cfg *config.Config, interval time.Duration) render.Options {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return render.Options{}
	}

	opts := render.Options{Clear: interval > 0 && !cfg.NoClear}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		opts.Width = w
	}
	return opts
}
