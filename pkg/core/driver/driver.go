// Package driver fans a signature scan out across many files using a
// bounded worker pool.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/c64music/sidid/pkg/core/scanner"
	"github.com/c64music/sidid/pkg/core/signature"
)

// Result is one file's scan outcome, keyed to its input position so
// callers can report results in input order regardless of which
// worker finished first.
type Result struct {
	Path    string
	Matches []signature.Match
}

// Scan runs scanner.Scan for every path in paths, using at most
// threads concurrent workers. threads <= 0 means "use all available
// cores", the default for -c. Results are returned in the same order
// as paths, independent of completion order.
func Scan(paths []string, signatures signature.Set, scanForMultiple bool, threads int) ([]Result, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	results := make([]Result, len(paths))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(threads)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = Result{
				Path:    path,
				Matches: scanner.Scan(path, signatures, scanForMultiple),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
