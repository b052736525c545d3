package main

import (
	"io"
	"os"

	"github.com/GregoryDosh/volumectl/internal/configurator"
	"github.com/GregoryDosh/volumectl/internal/toaster"
	"github.com/orandin/lumberjackrus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	buildVersion       = "0.1.0"
	defaultLogFilename = ""
	log                = logrus.WithField("module", "main")
	// notifier only carries messages meant for desktop notifications.
	notifier *logrus.Logger
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	directionFlag := &cli.StringFlag{
		Name:    "direction",
		Aliases: []string{"d"},
		Usage:   "input or output, output is preferred when omitted",
	}

	return &cli.App{
		Name:     "volumectl",
		HelpName: "volumectl",
		Usage:    "reads and sets audio device volume and mute state",
		Authors: []*cli.Author{
			{Name: "Gregory Dosh", Email: "GregoryDosh@users.noreply.github.com"},
		},
		Version: buildVersion,
		Before:  setupLogging,
		Flags: []cli.Flag{
			&cli.StringFlag{
				EnvVars: []string{"VOLUMECTL_CONFIG"},
				Name:    "config",
				Aliases: []string{"c", "f", "config_filename", "filename"},
				Usage:   "specify the yml configuration location",
				Value:   configurator.DefaultFilename,
			},
			&cli.StringFlag{
				EnvVars: []string{"LOG_LEVEL"},
				Name:    "log_level",
				Aliases: []string{"l"},
				Usage:   "trace, debug, info, warn, error, fatal, panic",
				Value:   "warn",
			},
			&cli.StringFlag{
				EnvVars: []string{"LOG_PATH"},
				Name:    "log_path",
				Usage:   "Set a path for the log file. Set empty to disable.",
				Value:   defaultLogFilename,
			},
			&cli.StringFlag{
				EnvVars: []string{"VOLUMECTL_BACKEND"},
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "platform or fixture, overrides the configuration",
			},
			&cli.StringFlag{
				EnvVars: []string{"VOLUMECTL_FIXTURE"},
				Name:    "fixture",
				Usage:   "yml file of simulated devices for the fixture backend",
			},
			&cli.BoolFlag{
				EnvVars: []string{"NOTIFICATIONS"},
				Aliases: []string{"n"},
				Name:    "notifications",
				Usage:   "Enables Windows 10 Notifications",
				Value:   false,
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "lists devices with their input and output support",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "plain",
						Aliases: []string{"p"},
						Usage:   "tab separated output without borders",
					},
				},
				Action: listAction,
			},
			{
				Name:      "get",
				Usage:     "prints the volume of a device",
				ArgsUsage: "DEVICE",
				Flags:     []cli.Flag{directionFlag},
				Action:    getAction,
			},
			{
				Name:      "set",
				Usage:     "sets the volume of a device",
				ArgsUsage: "DEVICE LEVEL",
				Description: "LEVEL is a fraction between 0 and 1 or a percentage such as 40%.\n" +
					"Every channel is set when the device has no master volume.",
				Flags:  []cli.Flag{directionFlag},
				Action: setAction,
			},
			{
				Name:      "mute",
				Usage:     "mutes, unmutes or toggles a device",
				ArgsUsage: "DEVICE [on|off|toggle]",
				Flags:     []cli.Flag{directionFlag},
				Action:    muteAction,
			},
		},
	}
}

func parseLogLevel(s string) logrus.Level {
	switch s {
	case "trace", "t":
		return logrus.TraceLevel
	case "debug", "d":
		return logrus.DebugLevel
	case "info", "i":
		return logrus.InfoLevel
	case "warn", "w":
		return logrus.WarnLevel
	case "error", "e":
		return logrus.ErrorLevel
	case "fatal", "f":
		return logrus.FatalLevel
	case "panic", "p":
		return logrus.PanicLevel
	default:
		return logrus.WarnLevel
	}
}

func setupLogging(ctx *cli.Context) error {
	ll := parseLogLevel(ctx.String("log_level"))
	logrus.SetLevel(ll)

	notifier = nil
	if ctx.Bool("notifications") {
		if toaster.Supported {
			logrus.AddHook(toaster.New(logrus.WarnLevel, &logrus.JSONFormatter{}))

			notifier = logrus.New()
			notifier.SetOutput(io.Discard)
			notifier.SetLevel(logrus.InfoLevel)
			notifier.AddHook(toaster.New(logrus.InfoLevel, &logrus.JSONFormatter{}))
		} else {
			log.Warn("notifications are only available on Windows")
		}
	}

	logPath := ctx.String("log_path")
	if logPath != "" {
		opts := &lumberjackrus.LogFile{
			Filename:   logPath,
			MaxSize:    10,
			MaxBackups: 2,
		}
		hook, err := lumberjackrus.NewHook(opts, ll, &logrus.JSONFormatter{}, nil)
		if err != nil {
			return err
		}
		logrus.AddHook(hook)
	}

	log.WithFields(logrus.Fields{
		"version":       ctx.App.Version,
		"documentation": "https://github.com/GregoryDosh/volumectl",
	}).Debug()
	return nil
}

// announce sends a result to the desktop when notifications are enabled.
func announce(format string, args ...interface{}) {
	log.Infof(format, args...)
	if notifier != nil {
		notifier.Infof(format, args...)
	}
}
