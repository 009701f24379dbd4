// Command ls-orrery is a terminal orrery: a solar-system viewer built
// from procedurally generated shell point clouds.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/ephem"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/scene"
	"github.com/litescript/ls-orrery/internal/shell"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	tracesPath    string
	listMode      bool
	watchInterval time.Duration
)

const (
	defaultRefresh = time.Minute
	minRefresh     = 5 * time.Second
	maxRefresh     = time.Hour
)

func main() {
	centerFlag := flag.String("center", "SUN", "View center body (catalog code or name)")
	epochFlag := flag.String("epoch", "", "Scene epoch, RFC3339 or YYYY-MM-DD (default: now)")
	refresh := flag.Duration("refresh", defaultRefresh, "Scene rebuild interval (e.g., 30s, 5m)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	modeFlag := flag.String("mode", "auto", "Position source: auto, horizons, kepler")
	offline := flag.Bool("offline", false, "Shorthand for -mode kepler (no network)")
	points := flag.Int("points", 0, "Cap sample points per shell trace (0 = table defaults)")
	systemFlag := flag.String("system", "", "Build an exoplanet system scene headless (implies -summary)")
	seed := flag.Int64("seed", 0, "Seed for jittered samplers (0 = library default)")
	flag.BoolVar(&summaryMode, "summary", false, "Print a scene summary table instead of the TUI")
	flag.StringVar(&tracesPath, "traces", "", "Export scene traces as JSON to a file (use - for stdout)")
	flag.BoolVar(&listMode, "list", false, "List catalog bodies and exit")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 1m)")
	flag.Parse()

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	if listMode {
		writeCatalogList(os.Stdout)
		return
	}

	center, ok := catalog.Lookup(*centerFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown body %q (try -list)\n", *centerFlag)
		os.Exit(1)
	}

	var epoch time.Time
	if *epochFlag != "" {
		var err error
		epoch, err = parseEpoch(*epochFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad -epoch value: %v\n", err)
			os.Exit(1)
		}
	}

	mode := ephem.ParseMode(*modeFlag)
	if *offline {
		mode = ephem.ModeKepler
	}
	provider := ephem.NewProvider(mode)
	logger.Debug("Position provider: %s", provider.Name())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.Center = center.Code
	stateCfg.Epoch = epoch
	stateCfg.Seed = *seed
	stateCfg.MaxPoints = *points
	stateCfg.RefreshInterval = *refresh
	stateMgr := state.NewManager(stateCfg)

	// Exoplanet system scenes have no ephemeris and no TUI canvas;
	// they are headless-only.
	if *systemFlag != "" {
		sys, ok := catalog.LookupSystem(*systemFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown system %q; available:\n", *systemFlag)
			for _, s := range catalog.Systems {
				fmt.Fprintf(os.Stderr, "  %s\n", s.Name)
			}
			os.Exit(1)
		}
		if !summaryMode && tracesPath == "" {
			summaryMode = true
		}
		runHeadless(ctx, func() (scene.Scene, error) {
			return scene.BuildSystem(sys, scene.Options{Epoch: epoch, Seed: *seed, MaxPoints: *points})
		}, logger)
		return
	}

	// Headless mode: no TUI
	if summaryMode || tracesPath != "" {
		runHeadless(ctx, func() (scene.Scene, error) {
			opts := stateMgr.BuildOptions()
			start := time.Now()
			s, err := scene.Build(provider, opts)
			duration := time.Since(start)
			if err != nil {
				stateMgr.Update(nil, duration, err)
				return scene.Scene{}, err
			}
			stateMgr.Update(&s, duration, nil)
			return s, nil
		}, logger)
		return
	}

	// The rebuild channel lets the UI force an immediate rebuild when
	// the user recenters or steps the epoch.
	rebuildCh := make(chan struct{}, 1)
	requestRebuild := func() {
		select {
		case rebuildCh <- struct{}{}:
		default:
		}
	}

	model := ui.New(stateMgr, requestRebuild)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runBuildLoop(ctx, provider, stateMgr, p, rebuildCh, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// parseEpoch accepts RFC3339 or a bare date.
func parseEpoch(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func runBuildLoop(ctx context.Context, provider ephem.PositionProvider, stateMgr *state.Manager, p *tea.Program, rebuildCh <-chan struct{}, logger *logging.Logger) {
	doBuild(provider, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Build loop shutting down")
			return
		case <-ticker.C:
			doBuild(provider, stateMgr, p, logger)
		case <-rebuildCh:
			doBuild(provider, stateMgr, p, logger)
		}
	}
}

func doBuild(provider ephem.PositionProvider, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	opts := stateMgr.BuildOptions()
	logger.Debug("Building scene: center=%s", opts.Center)

	start := time.Now()
	s, err := scene.Build(provider, opts)
	duration := time.Since(start)

	if err != nil {
		logger.Error("Scene build failed: %v", err)
		stateMgr.Update(nil, duration, err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}

	logger.Debug("Scene ready: %d traces, %d points in %v",
		len(s.Traces), s.TotalPoints(), duration)

	stateMgr.Update(&s, duration, nil)
	p.Send(ui.SceneUpdateMsg{Snapshot: stateMgr.Snapshot()})
}

// runHeadless builds scenes through the supplied closure and writes
// the requested outputs without starting the TUI.
func runHeadless(ctx context.Context, build func() (scene.Scene, error), logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		s, err := build()
		if err != nil {
			return err
		}

		if tracesPath != "" {
			if tracesPath == "-" {
				if err := s.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(tracesPath)
				if err != nil {
					return fmt.Errorf("create traces file: %w", err)
				}
				defer f.Close()
				if err := s.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
				logger.Info("Wrote %d traces to %s", len(s.Traces), tracesPath)
			}
		}

		if summaryMode {
			scene.WriteSummaryTable(os.Stdout, s)
		}

		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval. Stepping the epoch with wall
	// time only matters for live scenes, which is the watch use case.
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if summaryMode && isTTY {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

// writeCatalogList prints every catalog body with its shell count.
func writeCatalogList(w *os.File) {
	fmt.Fprintf(w, "%-18s %-8s %-13s %s\n", "Name", "Code", "Kind", "Shell layers")
	for _, o := range catalog.Objects {
		layers := "-"
		if n := len(shell.Shells(o.Code)); n > 0 {
			layers = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(w, "%-18s %-8s %-13s %s\n", o.Name, o.Code, o.Kind.String(), layers)
	}
	fmt.Fprintf(w, "\n%d objects; %d exoplanet systems (%d planets) in the Exoplanets view\n",
		len(catalog.Objects), len(catalog.Systems), catalog.PlanetCount())
}
