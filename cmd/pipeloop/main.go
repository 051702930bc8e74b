// Command pipeloop reads pipe-maze maps and prints, for each, the distance to
// the farthest loop cell and the number of cells enclosed by the loop.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/zerologr"
	"go.uber.org/multierr"

	"github.com/katalvlaran/pipeloop"
)

func init() {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run solves every input named in args and writes one line per input to outW.
// Logs go to errW. Failures do not stop the batch; they are combined and
// returned once every input has been tried.
func run(stdin io.Reader, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log := newLogger(cfg.LogLevel, cfg.LogFormat, errW).WithName("pipeloop")
	log.V(1).Info("configuration", "files", cfg.Files, "method", cfg.Method.String(), "workers", cfg.Workers)

	var errs error
	for _, name := range cfg.Files {
		res, err := solveFile(stdin, name,
			pipeloop.WithLogger(log.WithValues("file", name)),
			pipeloop.WithMethod(cfg.Method),
			pipeloop.WithWorkers(cfg.Workers))
		if err != nil {
			log.Error(err, "solve failed", "file", name)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		fmt.Fprintf(outW, "%s: distance=%d enclosed=%d\n", name, res.Distance, res.Enclosed)
	}
	return errs
}

// solveFile reads one map ("-" is stdin) and solves it.
func solveFile(stdin io.Reader, name string, opts ...pipeloop.Option) (*pipeloop.Result, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return pipeloop.Solve(string(text), opts...)
}
