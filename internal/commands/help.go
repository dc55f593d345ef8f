package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"syncdo/internal/config"
	"syncdo/internal/exitcode"
	"syncdo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "syncdo help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  syncdo                          List tasks (newest first)
  syncdo list                     Same as above
  syncdo add <title...>           Create a task
  syncdo toggle <ref>             Toggle a task (row number or id)
  syncdo ui                       Interactive view with periodic refresh
  syncdo serve [--addr <addr>]    Run a local task service
  syncdo help
  syncdo version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Verbose diagnostic logging

Configuration:
  The remote service origin comes from $SYNCDO_BASE_URL or base_url in
  <config-dir>/config.toml. A .env file in the working directory is
  loaded if present.
`
