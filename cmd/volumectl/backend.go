package main

import (
	"errors"

	"github.com/GregoryDosh/volumectl/internal/configurator"
	"github.com/GregoryDosh/volumectl/internal/fixture"
	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/GregoryDosh/volumectl/internal/mixer"
	"github.com/urfave/cli/v2"
)

var NoPlatformBackendError = errors.New("no audio backend for this platform, use the fixture backend")

// loadConfig reads the configuration and applies the backend flags on top.
// Only an explicitly named configuration file has to exist.
func loadConfig(ctx *cli.Context) (*configurator.Configurator, error) {
	c, err := configurator.New(ctx.String("config"), ctx.IsSet("config"))
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("backend") {
		c.Backend = ctx.String("backend")
	}
	if ctx.IsSet("fixture") {
		c.Fixture = ctx.String("fixture")
		if !ctx.IsSet("backend") {
			c.Backend = configurator.BackendFixture
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// openBackend returns the accessor c selects and a function releasing it.
func openBackend(c *configurator.Configurator) (hal.Accessor, func(), error) {
	if c.Backend == configurator.BackendFixture {
		log.Debugf("using fixture %s", c.Fixture)
		a, err := fixture.Load(c.Fixture)
		if err != nil {
			return nil, nil, err
		}
		return a, func() {}, nil
	}
	return platformBackend()
}

// session bundles what every command needs.
type session struct {
	config  *configurator.Configurator
	mixer   *mixer.Mixer
	cleanup func()
}

func newSession(ctx *cli.Context) (*session, error) {
	c, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	a, cleanup, err := openBackend(c)
	if err != nil {
		return nil, err
	}
	return &session{config: c, mixer: mixer.New(a), cleanup: cleanup}, nil
}
