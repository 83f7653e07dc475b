package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"
)

// Command identifies which beelay operation was selected on the command line.
type Command string

const (
	GetCommand  Command = "get"
	SetCommand  Command = "set"
	ListCommand Command = "list"
)

type GetCommandLine struct {
	SwitchName string `arg:"" name:"switch-name" help:"switch name"`
}

type SetCommandLine struct {
	SwitchName string `arg:"" name:"switch-name" help:"switch name"`
	State      string `arg:"" name:"state" help:"state (\"on\" or \"off\")"`
	Delay      string `name:"delay" short:"d" optional:"" help:"state change delay"`
}

type ListCommandLine struct{}

type CommandLine struct {
	Server string `name:"server" short:"s" env:"BEELAY_SERVER" default:"http://localhost:9999" help:"beelay server address"`
	Debug  bool   `name:"debug" default:"false" help:"produce debug logging"`

	Get  GetCommandLine  `cmd:"" help:"get switch state"`
	Set  SetCommandLine  `cmd:"" help:"set switch state"`
	List ListCommandLine `cmd:"" help:"list switches"`
}

func parseCommandLine(args []string) fx.Option {
	var (
		options []fx.Option
		cl      CommandLine
		kctx    *kong.Context
		k, err  = kong.New(
			&cl,
			kong.Description(
				"A command-line client for a beelay switch server.  Each invocation issues a single HTTP request to read switch state, change switch state, or list the available switches.",
			),
		)
	)

	if err == nil {
		kctx, err = k.Parse(args)
	}

	if err == nil {
		var debug Logger
		if cl.Debug {
			debug = WriterLogger{Writer: os.Stdout}
		} else {
			debug = DiscardLogger{}
		}

		options = append(options,
			fx.Logger(debug),
			fx.Supply(
				cl,
				// kong reports the selected command together with its
				// positional placeholders, e.g. "set <switch-name> <state>"
				Command(strings.Fields(kctx.Command())[0]),
			),
		)
	}

	if err != nil {
		options = append(options, fx.Error(err))
	}

	return fx.Options(options...)
}
