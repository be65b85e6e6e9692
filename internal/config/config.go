package config

import "io"

type Config interface {
	Port() string

	LogLevel() string
	LogFormat() string

	PprofEnabled() bool
	PprofPort() string
}

// MustLoad reads an optional .env file and then parses args, which must not
// include the program name. Help and version output go to out, after which
// ErrExit is returned.
func MustLoad(args []string, out io.Writer) (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse(args, out)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Port() string       { return c.port }
func (c *config) LogLevel() string   { return c.logLevel }
func (c *config) LogFormat() string  { return c.logFormat }
func (c *config) PprofEnabled() bool { return c.pprofEnabled }
func (c *config) PprofPort() string  { return c.pprofPort }
