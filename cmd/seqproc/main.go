package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/seqproc/seqproc/internal/config"
	"github.com/seqproc/seqproc/internal/expr"
	"github.com/seqproc/seqproc/internal/logging"
	"github.com/seqproc/seqproc/internal/runner"
	"github.com/seqproc/seqproc/logs"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to seqproc.toml")
		filePath   = flag.String("file", "", "input file with one expression per line")
		workers    = flag.Int("workers", 0, "worker count override")
		quiet      = flag.Bool("quiet", false, "print values only")
		initCfg    = flag.Bool("init", false, "print a default config template and exit")
	)
	flag.Parse()

	if *initCfg {
		tmpl, err := config.Template()
		if err != nil {
			fatal(err)
		}
		fmt.Print(tmpl)
		return
	}

	opts := config.DefaultOptions()
	if *configPath != "" {
		loaded, err := loadOptions(*configPath)
		if err != nil {
			fatal(err)
		}
		opts = loaded
	}
	if *workers > 0 {
		opts.Workers = *workers
	}
	if *quiet {
		opts.Quiet = true
	}
	if *filePath != "" {
		opts.File = *filePath
	}
	logging.ConfigureRuntimeLevel(opts.LogLevel)

	lines, err := collectLines(flag.Args(), opts.File)
	if err != nil {
		fatal(err)
	}
	if len(lines) == 0 {
		fatal(fmt.Errorf("no input expressions"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logs.Infof("seqproc run lines=%d workers=%d", len(lines), opts.Workers)
	results := runner.Run(ctx, lines, opts.Workers, expr.EvalString)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "seqproc: line %d: %v\n", res.Index+1, res.Err)
			continue
		}
		if opts.Quiet {
			fmt.Println(res.Value)
		} else {
			fmt.Printf("%s = %d\n", res.Line, res.Value)
		}
	}
	if failed > 0 {
		logs.Errf("seqproc run failed lines=%d total=%d", failed, len(results))
		os.Exit(1)
	}
}

// collectLines gathers expressions from argv, an input file, or stdin, in
// that preference order. Blank lines are skipped.
func collectLines(args []string, path string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	lines := make([]string, 0)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "seqproc: %v\n", err)
	os.Exit(1)
}
