package configurator

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	BackendPlatform = "platform"
	BackendFixture  = "fixture"

	DefaultFilename = "~/.config/volumectl/config.yml"
)

var (
	log                 = logrus.WithField("module", "configurator")
	UnknownBackendError = errors.New("unknown backend")
	MissingFixtureError = errors.New("fixture backend needs a fixture file")
)

type Configurator struct {
	Backend string            `yaml:"backend,omitempty"`
	Fixture string            `yaml:"fixture,omitempty"`
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

func (c *Configurator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// This is so we can set some default values if not specified in the config.
	type rawConfigurator Configurator
	raw := rawConfigurator{
		Backend: BackendPlatform,
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*c = Configurator(raw)
	return nil
}

// New reads filename. A missing file is only an error when required is set,
// otherwise the defaults are returned.
func New(filename string, required bool) (*Configurator, error) {
	log.Trace("Enter New")
	defer log.Trace("Exit New")

	c := &Configurator{Backend: BackendPlatform}

	expanded, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}

	f, err := ioutil.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			log.Debugf("no config at %s, using defaults", expanded)
			return c, nil
		}
		return nil, err
	}
	log.Debugf("reading %s from disk", expanded)

	if err := yaml.Unmarshal(f, c); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", expanded, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return c, nil
}

// Validate checks the backend selection and expands the fixture path.
func (c *Configurator) Validate() error {
	switch strings.ToLower(c.Backend) {
	case "", BackendPlatform:
		c.Backend = BackendPlatform
	case BackendFixture:
		c.Backend = BackendFixture
		if c.Fixture == "" {
			return MissingFixtureError
		}
	default:
		return fmt.Errorf("%w: %s", UnknownBackendError, c.Backend)
	}

	if c.Fixture != "" {
		f, err := homedir.Expand(c.Fixture)
		if err != nil {
			return err
		}
		c.Fixture = f
	}
	return nil
}

// ResolveAlias returns the device token an alias stands for, or token itself
// when it is not an alias. Aliases match regardless of case.
func (c *Configurator) ResolveAlias(token string) string {
	for alias, target := range c.Aliases {
		if strings.EqualFold(alias, token) {
			log.Debugf("alias %s -> %s", alias, target)
			return target
		}
	}
	return token
}
