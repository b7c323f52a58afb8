// Command hamilton counts Hamiltonian paths through a grid graph: a bare
// run prints the count, and a trailing iteration count switches to
// benchmark mode instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	json "github.com/goccy/go-json"

	"github.com/katalvlaran/hamilton/bench"
	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/pathcount"
	"github.com/katalvlaran/hamilton/verify"
	"github.com/katalvlaran/hamilton/visualize"
)

// result is the JSON-serializable summary printed with -json.
type result struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Count           uint64  `json:"count"`
	BenchIterations int     `json:"bench_iterations,omitempty"`
	BenchTotalSecs  float64 `json:"bench_total_seconds,omitempty"`
	BenchMeanSecs   float64 `json:"bench_mean_seconds,omitempty"`
	BenchStdDevSecs float64 `json:"bench_stddev_seconds,omitempty"`
	PathValid       *bool   `json:"path_valid,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hamilton", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a TOML settings file")
	workers := fs.Int("workers", 0, "parallel worker count (0 = sequential driver)")
	jsonOut := fs.Bool("json", false, "print results as JSON")
	watch := fs.Bool("watch", false, "re-run whenever the grid file changes")
	visualizeFlag := fs.Bool("visualize", false, "open an interactive row-by-row viewer after counting")
	benchHistory := fs.String("bench-history", "", "sqlite file to append benchmark results to")
	verifyPath := fs.String("verify-path", "", "check a \"(row,col);(row,col);...\" path against the grid instead of counting")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var settings fileSettings
	if *configPath != "" {
		var err error
		settings, err = loadSettings(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "hamilton: loading config: %v\n", err)
			return 1
		}
		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if !explicit["workers"] && settings.Workers != 0 {
			*workers = settings.Workers
		}
		if !explicit["json"] && settings.JSON {
			*jsonOut = true
		}
		if !explicit["bench-history"] && settings.BenchHistory != "" {
			*benchHistory = settings.BenchHistory
		}
	}

	rest := fs.Args()

	var gridPath string
	var reader io.Reader = stdin
	if len(rest) >= 1 {
		gridPath = rest[0]
		f, err := os.Open(gridPath)
		if err != nil {
			fmt.Fprintf(stderr, "hamilton: %v\n", err)
			return 1
		}
		defer f.Close()
		reader = f
	}

	g, err := grid.Parse(reader)
	if err != nil {
		fmt.Fprintf(stderr, "hamilton: %v\n", err)
		return 1
	}

	if *verifyPath != "" {
		return runVerify(g, *verifyPath, *jsonOut, stdout, stderr)
	}

	if len(rest) >= 2 {
		return runBench(g, rest[1], *benchHistory, g.Width(), g.Height(), *jsonOut, stdout, stderr)
	}

	if *watch && gridPath != "" {
		return runWatch(gridPath, *workers, *jsonOut, stdout, stderr)
	}

	res, err := count(g, *workers)
	if err != nil {
		fmt.Fprintf(stderr, "hamilton: %v\n", err)
		return 1
	}

	printResult(res, *jsonOut, stdout)

	if *visualizeFlag {
		if err := runVisualizer(g); err != nil {
			fmt.Fprintf(stderr, "hamilton: visualizer: %v\n", err)
			return 1
		}
	}

	return 0
}

func count(g *grid.Grid, workers int) (result, error) {
	if connected, err := g.Connected(); err == nil && !connected {
		return result{Width: g.Width(), Height: g.Height(), Count: 0}, nil
	}

	var driver pathcount.Driver
	if workers > 0 {
		driver = pathcount.NewParallel(pathcount.Options{Workers: workers})
	} else {
		driver = pathcount.NewSequential(pathcount.DefaultOptions())
	}

	c, err := driver.Count(g)
	if err != nil {
		return result{}, err
	}

	return result{Width: g.Width(), Height: g.Height(), Count: c}, nil
}

func printResult(res result, jsonOut bool, stdout io.Writer) {
	if jsonOut {
		enc := json.NewEncoder(stdout)
		_ = enc.Encode(res)
		return
	}

	if res.BenchIterations > 0 {
		fmt.Fprintf(stdout, "%d paths; %g seconds for %d iterations, giving %g seconds per iteration\n",
			res.Count, res.BenchTotalSecs, res.BenchIterations, res.BenchMeanSecs)
		return
	}

	fmt.Fprintln(stdout, res.Count)
}

func runBench(g *grid.Grid, iterArg, historyPath string, width, height int, jsonOut bool, stdout, stderr io.Writer) int {
	var iterations int
	if _, err := fmt.Sscanf(iterArg, "%d", &iterations); err != nil {
		fmt.Fprintf(stderr, "hamilton: invalid iteration count %q\n", iterArg)
		return 1
	}

	report, err := bench.Run(g, iterations)
	if err != nil {
		fmt.Fprintf(stderr, "hamilton: %v\n", err)
		return 1
	}

	if historyPath != "" {
		h, err := bench.OpenHistory(historyPath)
		if err != nil {
			fmt.Fprintf(stderr, "hamilton: opening bench history: %v\n", err)
			return 1
		}
		defer h.Close()
		if err := h.Record(width, height, report); err != nil {
			fmt.Fprintf(stderr, "hamilton: recording bench history: %v\n", err)
			return 1
		}
	}

	printResult(result{
		Width: width, Height: height, Count: report.Count,
		BenchIterations: report.Iterations, BenchTotalSecs: report.TotalSeconds,
		BenchMeanSecs: report.MeanSeconds, BenchStdDevSecs: report.StdDevSeconds,
	}, jsonOut, stdout)

	return 0
}

func runVerify(g *grid.Grid, pathLiteral string, jsonOut bool, stdout, stderr io.Writer) int {
	path, err := parsePath(pathLiteral)
	if err != nil {
		fmt.Fprintf(stderr, "hamilton: %v\n", err)
		return 1
	}

	ok, reasons := verify.Check(g, path)
	if jsonOut {
		valid := ok
		enc := json.NewEncoder(stdout)
		_ = enc.Encode(result{Width: g.Width(), Height: g.Height(), PathValid: &valid})
		return 0
	}

	if ok {
		fmt.Fprintln(stdout, "valid path")
		return 0
	}

	fmt.Fprintln(stdout, "invalid path:")
	for _, r := range reasons {
		fmt.Fprintf(stdout, "  %s\n", r)
	}

	return 0
}

func runVisualizer(g *grid.Grid) error {
	snapshots, count, err := visualize.Collect(g)
	if err != nil {
		return err
	}

	p := tea.NewProgram(visualize.NewModel(snapshots, count))
	_, err = p.Run()
	return err
}

func runWatch(gridPath string, workers int, jsonOut bool, stdout, stderr io.Writer) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(stderr, "hamilton: %v\n", err)
		return 1
	}
	defer watcher.Close()

	if err := watcher.Add(gridPath); err != nil {
		fmt.Fprintf(stderr, "hamilton: %v\n", err)
		return 1
	}

	runOnce := func() {
		f, err := os.Open(gridPath)
		if err != nil {
			fmt.Fprintf(stderr, "hamilton: %v\n", err)
			return
		}
		defer f.Close()

		g, err := grid.Parse(f)
		if err != nil {
			fmt.Fprintf(stderr, "hamilton: %v\n", err)
			return
		}

		res, err := count(g, workers)
		if err != nil {
			fmt.Fprintf(stderr, "hamilton: %v\n", err)
			return
		}
		printResult(res, jsonOut, stdout)
	}

	runOnce()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintf(stderr, "hamilton: watch error: %v\n", err)
		}
	}
}
