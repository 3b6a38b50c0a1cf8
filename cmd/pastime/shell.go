// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/pastime/internal/session"
)

const shellPrompt = "pastime> "

const shellHelp = `Commands:
  register <name>            create a user and log in
  login <name>               log in as an existing user
  logout                     log out
  whoami                     show the current user
  list [category]            list activities
  show <id>                  show one activity
  categories                 list categories
  prefs                      show your preferences
  prefs set k=v ...          category=a,b|any price=0-1 group=1-5
  pin|unpin|like|dislike <id>
  rate <id> <1-5>            rate an activity
  pins|likes|dislikes|ratings
  recommend [n]              ranked recommendations
  random                     one suggestion
  similar <id> [k]           activities similar to <id>
  help                       this text
  quit                       leave the session`

var errQuit = errors.New("quit")

func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a, err := bootstrap(ctx, opts.cfg, notifier(out))
	if err != nil {
		return err
	}
	stop := a.startBackground(ctx)
	defer stop()

	sh := &shell{
		sess: a.session,
		in:   cmd.InOrStdin(),
		out:  out,
		topN: opts.cfg.Recommend.DefaultTopN,
	}
	return sh.run(ctx)
}

// shell is a line-oriented presentation layer over a session.
type shell struct {
	sess *session.Session
	in   io.Reader
	out  io.Writer
	topN int
}

func (s *shell) run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Welcome to pastime: %d activities loaded. Type 'help' for commands.\n", s.sess.Catalog().Len())

	scanner := bufio.NewScanner(s.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(s.out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		err := s.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		var serr *session.Error
		if err != nil && !errors.As(err, &serr) {
			// Session errors were already shown by the notifier.
			fmt.Fprintf(s.out, "! %v\n", err)
		}
	}
}

// exec runs one command line.
//
//nolint:gocyclo // flat command dispatch
func (s *shell) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "register":
		return s.sess.OnRegister(strings.Join(args, " "))
	case "login":
		return s.sess.OnLogin(strings.Join(args, " "))
	case "logout":
		s.sess.OnLogout()
		return nil
	case "whoami":
		if u := s.sess.CurrentUser(); u != "" {
			fmt.Fprintln(s.out, u)
		} else {
			fmt.Fprintln(s.out, "(not logged in)")
		}
		return nil
	case "list", "ls":
		return printActivities(s.out, filterCategory(s.sess.Catalog().All(), strings.Join(args, " ")))
	case "categories":
		fmt.Fprintln(s.out, strings.Join(s.sess.Catalog().Categories(), "\n"))
		return nil
	case "show":
		id, err := intArg(args, 0, "show <id>")
		if err != nil {
			return err
		}
		a, ok := s.sess.Catalog().Get(id)
		if !ok {
			return fmt.Errorf("no activity %d", id)
		}
		return printActivity(s.out, a)
	case "prefs", "preferences":
		return s.prefs(args)
	case "pin", "unpin", "like", "dislike":
		id, err := intArg(args, 0, name+" <id>")
		if err != nil {
			return err
		}
		return s.interact(name, id)
	case "rate":
		id, err := intArg(args, 0, "rate <id> <1-5>")
		if err != nil {
			return err
		}
		rating, err := intArg(args, 1, "rate <id> <1-5>")
		if err != nil {
			return err
		}
		return s.sess.OnRate(id, rating)
	case "pins", "likes", "dislikes", "ratings":
		return s.list(name)
	case "recommend", "rec":
		n := s.topN
		if len(args) > 0 {
			v, err := intArg(args, 0, "recommend [n]")
			if err != nil {
				return err
			}
			n = v
		}
		resp, err := s.sess.OnRequestRecommendations(ctx, n)
		if resp != nil && len(resp.Items) > 0 {
			if perr := printScored(s.out, resp.Items); perr != nil {
				return perr
			}
		}
		return err
	case "random":
		item, err := s.sess.OnRequestRandomActivity(ctx)
		if item != nil {
			if perr := printActivity(s.out, item.Activity); perr != nil {
				return perr
			}
		}
		return err
	case "similar":
		id, err := intArg(args, 0, "similar <id> [k]")
		if err != nil {
			return err
		}
		k := s.topN
		if len(args) > 1 {
			if k, err = intArg(args, 1, "similar <id> [k]"); err != nil {
				return err
			}
		}
		items, err := s.sess.OnRequestSimilar(id, k)
		if err != nil {
			return err
		}
		return printScored(s.out, items)
	default:
		return fmt.Errorf("unknown command %q (try 'help')", name)
	}
}

func (s *shell) interact(name string, id int) error {
	switch name {
	case "pin":
		return s.sess.OnPin(id)
	case "unpin":
		return s.sess.OnUnpin(id)
	case "like":
		return s.sess.OnLike(id)
	default:
		return s.sess.OnDislike(id)
	}
}

func (s *shell) list(name string) error {
	switch name {
	case "ratings":
		rated, err := s.sess.Rated()
		if err != nil {
			return err
		}
		return printRated(s.out, rated)
	case "pins":
		activities, err := s.sess.Pinned()
		if err != nil {
			return err
		}
		return printActivities(s.out, activities)
	case "likes":
		activities, err := s.sess.Liked()
		if err != nil {
			return err
		}
		return printActivities(s.out, activities)
	default:
		activities, err := s.sess.Disliked()
		if err != nil {
			return err
		}
		return printActivities(s.out, activities)
	}
}

func (s *shell) prefs(args []string) error {
	current, err := s.sess.Preferences()
	if err != nil {
		return err
	}
	if len(args) == 0 || strings.EqualFold(args[0], "show") {
		fmt.Fprintln(s.out, formatPreferences(current))
		return nil
	}
	if !strings.EqualFold(args[0], "set") {
		return errors.New("usage: prefs [show | set k=v ...]")
	}
	prefs, err := parsePreferenceArgs(current, args[1:])
	if err != nil {
		return err
	}
	return s.sess.OnSetPreferences(prefs)
}

func intArg(args []string, i int, usage string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return v, nil
}
