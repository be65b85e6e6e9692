package config

import (
	"errors"
	"fmt"
	"io"
	"ipecho/internal/version"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
)

const (
	programName = "ipecho"
	defaultPort = "8080"
)

// ErrExit is returned after help or version output has been written.
var ErrExit = errors.New("config: exit requested")

type config struct {
	port string

	logLevel  string
	logFormat string

	pprofEnabled bool
	pprofPort    string
}

type arguments struct {
	Port         string `arg:"positional" help:"port to listen on [default: 8080]"`
	LogLevel     string `arg:"--log-level,env:LOG_LEVEL" default:"info" help:"debug, info, warn or error"`
	LogFormat    string `arg:"--log-format,env:LOG_FORMAT" default:"console" help:"console or json"`
	PprofEnabled bool   `arg:"--pprof,env:PPROF_ENABLED" help:"serve pprof on localhost"`
	PprofPort    string `arg:"--pprof-port,env:PPROF_PORT" default:"6060" help:"pprof port"`
}

func (arguments) Version() string {
	return version.GetVersion()
}

func (arguments) Description() string {
	return "Replies to every connection with the caller's address."
}

func parse(args []string, out io.Writer) (*config, error) {
	a := arguments{Port: defaultPort}
	p, err := arg.NewParser(arg.Config{Program: programName}, &a)
	if err != nil {
		return nil, fmt.Errorf("create argument parser: %w", err)
	}

	err = p.Parse(args)
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(out)
		return nil, ErrExit
	case errors.Is(err, arg.ErrVersion):
		_, _ = fmt.Fprintln(out, a.Version())
		return nil, ErrExit
	case err != nil:
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	return &config{
		port:         a.Port,
		logLevel:     a.LogLevel,
		logFormat:    a.LogFormat,
		pprofEnabled: a.PprofEnabled,
		pprofPort:    a.PprofPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}
