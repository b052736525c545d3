package main

import (
	"fmt"

	"github.com/GregoryDosh/volumectl/internal/mixer"
	"github.com/GregoryDosh/volumectl/internal/singleinstance"
	"github.com/urfave/cli/v2"
)

// run opens a session for one command and maps its error to an exit code.
func run(ctx *cli.Context, minArgs, maxArgs int, f func(*session) error) error {
	if n := ctx.Args().Len(); n < minArgs || n > maxArgs {
		return exit(fmt.Errorf("%w: %s %s", UsageError, ctx.Command.Name, ctx.Command.ArgsUsage))
	}

	s, err := newSession(ctx)
	if err != nil {
		return exit(err)
	}
	defer s.cleanup()
	return exit(f(s))
}

// locked runs f while holding the instance lock, so two invocations can not
// interleave a read and a write on the same device.
func locked(f func() error) error {
	release, err := singleinstance.GetLock(singleinstance.Name)
	if err != nil {
		return err
	}
	defer release()
	return f()
}

func listAction(ctx *cli.Context) error {
	log.Trace("Enter listAction")
	defer log.Trace("Exit listAction")

	return run(ctx, 0, 0, func(s *session) error {
		devices, err := s.mixer.ListDevices()
		if err != nil {
			return err
		}
		if ctx.Bool("plain") {
			return renderPlain(ctx.App.Writer, devices)
		}
		return renderTable(ctx.App.Writer, devices)
	})
}

func getAction(ctx *cli.Context) error {
	log.Trace("Enter getAction")
	defer log.Trace("Exit getAction")

	return run(ctx, 1, 1, func(s *session) error {
		token := s.config.ResolveAlias(ctx.Args().First())
		r, err := s.mixer.GetVolume(token, ctx.String("direction"))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.App.Writer, r.Distinct())
		return err
	})
}

func setAction(ctx *cli.Context) error {
	log.Trace("Enter setAction")
	defer log.Trace("Exit setAction")

	return run(ctx, 2, 2, func(s *session) error {
		level, err := parseLevel(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		token := s.config.ResolveAlias(ctx.Args().First())
		direction := ctx.String("direction")

		return locked(func() error {
			if err := s.mixer.SetVolume(token, level, direction); err != nil {
				return err
			}
			r, err := s.mixer.GetVolume(token, direction)
			if err != nil {
				log.Warnf("volume set but could not be read back: %v", err)
				return nil
			}
			announce("%s volume set to %s", token, r.Distinct())
			_, err = fmt.Fprintln(ctx.App.Writer, r.Distinct())
			return err
		})
	})
}

func muteAction(ctx *cli.Context) error {
	log.Trace("Enter muteAction")
	defer log.Trace("Exit muteAction")

	return run(ctx, 1, 2, func(s *session) error {
		action, err := mixer.ParseMuteAction(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		token := s.config.ResolveAlias(ctx.Args().First())

		return locked(func() error {
			muted, err := s.mixer.MuteControl(token, action, ctx.String("direction"))
			if err != nil {
				return err
			}
			announce("%s %s", token, muteWord(muted))
			_, err = fmt.Fprintln(ctx.App.Writer, muteWord(muted))
			return err
		})
	})
}
