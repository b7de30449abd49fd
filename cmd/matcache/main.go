// Command matcache demonstrates memoized matrix inversion: resolve an
// inverse twice (the second call is a cache hit), replace the matrix, and
// resolve again (recompute). Run with --verbose to see the hit/miss traces.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/matcache/cache"
	"github.com/katalvlaran/matcache/matrix"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	initLogger()

	cmd := &cli.Command{
		Name:  "matcache",
		Usage: "memoized matrix inversion demo",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Usage: "dimension of the demo matrix",
				Value: 3,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show cache hit/miss traces",
			},
		},
		Action: runDemo,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// runDemo exercises the full cache lifecycle on diagonal matrices.
func runDemo(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	n := int(cmd.Int("size"))

	// Scaled identity: diag(3,...,3), trivially invertible.
	m, err := scaledIdentity(n, 3.0)
	if err != nil {
		return err
	}
	c, err := cache.NewWith(m)
	if err != nil {
		return err
	}
	r := cache.NewResolver()

	// First resolve computes, second is served from cache.
	inv, err := r.Resolve(c)
	if err != nil {
		return err
	}
	fmt.Printf("inverse of diag(3)×%d:\n%v", n, inv)
	if _, err = r.Resolve(c); err != nil {
		return err
	}

	// Replacing the matrix invalidates the cache.
	m2, err := scaledIdentity(n, 4.0)
	if err != nil {
		return err
	}
	if err = c.SetMatrix(m2); err != nil {
		return err
	}
	inv2, err := r.Resolve(c)
	if err != nil {
		return err
	}
	fmt.Printf("inverse of diag(4)×%d:\n%v", n, inv2)

	// Sanity: M × M⁻¹ should be the identity.
	prod, err := matrix.Mul(m2, inv2)
	if err != nil {
		return err
	}
	fmt.Printf("product check:\n%v", prod)

	return nil
}

// scaledIdentity returns s·I_n.
func scaledIdentity(n int, s float64) (*matrix.Dense, error) {
	m, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, s)
	}

	return m, nil
}

// initLogger sets up apex with a custom handler and a log level from the
// MATCACHE_LOG env variable.
func initLogger() {
	level := strings.ToUpper(os.Getenv("MATCACHE_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&stdoutHandler{})
	log.SetLevelFromString(level)
}

// stdoutHandler formats log messages and writes to stdout.
type stdoutHandler struct{}

// HandleLog implements the log.Handler interface.
func (h *stdoutHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	fmt.Fprintf(os.Stdout, "%s %.1s %s\n", timestamp, level, e.Message)

	return nil
}
