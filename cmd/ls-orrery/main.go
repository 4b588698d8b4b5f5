// Command ls-orrery is a terminal solar system simulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/ui"
	"github.com/litescript/ls-orrery/internal/version"
)

// CLI flags for headless mode
var (
	infoMode      bool
	statusMode    bool
	frames        int
	snapshotPath  string
	watchInterval time.Duration
)

const (
	defaultFPS = 20
	minFPS     = 1
	maxFPS     = 60
)

func main() {
	// Parse flags
	scale := flag.String("scale", string(orrery.DefaultScaleMode), "Scale mode (realistic, logarithmic, artistic)")
	speed := flag.Float64("speed", orrery.DefaultSpeed, "Simulated days per tick (0.1 to 10)")
	trail := flag.Int("trail", orrery.DefaultTrailLength, "Trail length in points")
	seed := flag.Uint64("seed", 0, "Seed for initial orbital phases (0 = random)")
	catalogPath := flag.String("catalog", "", "JSON body catalog (default: Sun and eight planets)")
	fps := flag.Int("fps", defaultFPS, "Animation frames per second")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file in TUI mode")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.BoolVar(&infoMode, "info", false, "Print the body table instead of TUI")
	flag.BoolVar(&statusMode, "status", false, "Print a one-line status instead of TUI")
	flag.IntVar(&frames, "frames", 0, "Advance this many frames before headless output")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 1s)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ls-orrery v%s\n", version.Version)
		return
	}

	// Validate frame rate
	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	headless := infoMode || statusMode || snapshotPath != "" || frames > 0 || watchInterval > 0

	// Set up logging. The TUI owns the terminal, so logs go to a file or nowhere.
	logger := logging.New(logging.ParseLevel(*logLevel))
	closeLog := func() {}
	if !headless {
		out, closer, err := openLogOutput(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		closeLog = closer
		logger.SetOutput(out)
	}
	defer closeLog()

	// os.Exit skips deferred calls
	fatal := func(err error) {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Initialize components
	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		fatal(err)
	}

	simCfg := orrery.DefaultConfig()
	mode, ok := orrery.ParseScaleMode(*scale)
	if !ok {
		logger.Warn("unknown scale mode %q, using %s", *scale, mode)
	}
	simCfg.ScaleMode = mode
	simCfg.Speed = *speed
	simCfg.TrailLength = *trail
	if *seed != 0 {
		simCfg.Seed = *seed
	}

	sys, err := orrery.New(cat, simCfg)
	if err != nil {
		fatal(err)
	}
	logger.Info("loaded %d bodies, scale=%s speed=%.1f seed=%d", sys.Len(), sys.ScaleMode(), sys.Speed(), simCfg.Seed)

	stateCfg := state.DefaultConfig()
	stateCfg.TickInterval = time.Second / time.Duration(*fps)
	stateMgr := state.NewManager(sys, stateCfg, logger)

	// Headless mode: no TUI
	if headless {
		runHeadless(ctx, stateMgr, logger)
		return
	}

	// Create TUI model
	model := ui.New(stateMgr, logger)

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fatal(fmt.Errorf("running TUI: %w", err))
	}
}

func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func loadCatalog(path string) (orrery.Catalog, error) {
	if path == "" {
		return orrery.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := orrery.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	frame := 0

	advance := func(n int) {
		for i := 0; i < n; i++ {
			frame++
			stateMgr.Advance(frame)
		}
	}

	outputOnce := func() error {
		// Export JSON if requested
		if snapshotPath != "" {
			if err := writeSnapshot(stateMgr, snapshotPath); err != nil {
				return err
			}
		}

		// Print body table if requested
		if infoMode {
			orrery.WriteBodyTable(os.Stdout, stateMgr.Snapshot().Bodies)
		}

		if statusMode {
			stateMgr.WriteStatus(os.Stdout)
		}
		return nil
	}

	advance(frames)

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: advance max(frames, 1) frames per interval. On a terminal the orbit
	// view is redrawn in place; otherwise the selected outputs repeat.
	perTick := max(frames, 1)
	render := func() {
		if isTTY && !infoMode && !statusMode && snapshotPath == "" {
			renderWatchFrame(stateMgr)
			return
		}
		if err := outputOnce(); err != nil {
			logger.Error("%v", err)
		}
	}
	render()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			advance(perTick)
			render()
		}
	}
}

func writeSnapshot(stateMgr *state.Manager, path string) error {
	export := stateMgr.Export(time.Now())
	if path == "-" {
		if err := export.WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("write JSON to stdout: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()
	if err := export.WriteJSON(f); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	return nil
}

// renderWatchFrame draws the orbit view sized to the terminal.
func renderWatchFrame(stateMgr *state.Manager) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	view := ui.NewOrbitViewModel().SetSize(width, height-1).UpdateData(stateMgr.Snapshot())
	fmt.Print("\033[H\033[2J")
	fmt.Print(view.View())
}
