package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/bitmask/codec"
	"github.com/hupe1980/bitmask/internal/logging"
)

// Run using
//  go run ./cmd/bitmask <command> <flags>

const opsKey = "ops"

var (
	widthFlag = cli.IntFlag{
		Name:    "width",
		Usage:   "storage word width in bits: 8, 16, 32, 64, 128 or 256",
		Value:   64,
		EnvVars: []string{"BITMASK_WIDTH"},
	}
	codecFlag = cli.StringFlag{
		Name:    "codec",
		Usage:   "record codec: json or go-json",
		Value:   codec.Default.Name(),
		EnvVars: []string{"BITMASK_CODEC"},
	}
	logLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Usage:   "minimum log level: debug, info, warn or error",
		Value:   "warn",
		EnvVars: []string{"BITMASK_LOG_LEVEL"},
	}
	logFormatFlag = cli.StringFlag{
		Name:    "log-format",
		Usage:   "log output format: text or json",
		Value:   "text",
		EnvVars: []string{"BITMASK_LOG_FORMAT"},
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "bitmask",
		Usage: "inspect and combine encoded bit masks",
		Flags: []cli.Flag{
			&widthFlag,
			&codecFlag,
			&logLevelFlag,
			&logFormatFlag,
		},
		Before: setup,
		Commands: []*cli.Command{
			&RenderCmd,
			&ParseCmd,
			&CountCmd,
			&GetCmd,
			&SetCmd,
			&AndCmd,
			&OrCmd,
			&XorCmd,
			&NotCmd,
			&ShlCmd,
			&ShrCmd,
		},
		Metadata: map[string]interface{}{},
	}
}

// setup resolves the global flags into the operations used by every command.
func setup(c *cli.Context) error {
	log, err := logging.New(c.App.ErrWriter, c.String(logLevelFlag.Name), c.String(logFormatFlag.Name))
	if err != nil {
		return err
	}
	cd, ok := codec.ByName(c.String(codecFlag.Name))
	if !ok {
		return fmt.Errorf("unknown codec %q", c.String(codecFlag.Name))
	}
	ops, err := newOps(c.Int(widthFlag.Name), cd, log)
	if err != nil {
		return err
	}
	c.App.Metadata[opsKey] = ops
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
