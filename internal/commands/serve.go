package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"syncdo/internal/config"
	"syncdo/internal/devserver"
	"syncdo/internal/exitcode"
	"syncdo/internal/service"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command: a local in-memory instance of
// the task service wire protocol, for development and demos.
type ServeCmd struct {
	addr string
}

func (c *ServeCmd) Name() string      { return "serve" }
func (c *ServeCmd) Aliases() []string { return nil }
func (c *ServeCmd) Synopsis() string  { return "Run a local task service" }
func (c *ServeCmd) Usage() string     { return "syncdo serve [--addr <host:port>]" }
func (c *ServeCmd) NeedsService() bool { return false }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "localhost:8787", "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	httpSrv := &http.Server{
		Addr:    c.addr,
		Handler: devserver.New(),
	}

	// Shut down cleanly on context cancellation (SIGINT/SIGTERM).
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpSrv.Shutdown(shutdownCtx)
	}()

	if !cfg.Quiet {
		fmt.Fprintf(out, "listening on http://%s\n", c.addr)
	}

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
