// cmd/userdesk/console.go
//
// Userdesk – interactive console mode.
//
// Context
//   Console mode is the closest thing to the original list screen: a paged
//   table of users with search, sort, delete, and jump-offs into the create
//   and edit forms.  The browse controller owns the list state; this file
//   only reads commands and renders.  The diagnostics server runs alongside
//   in the same errgroup, so Ctrl-C tears both down together.
//
// Commands
//   n / p        next / previous page
//   g <n>        go to page n
//   s <term>     search (empty term clears)
//   o <column>   sort by column, toggling direction on repeat
//   d <id>       delete user
//   c            create user (interactive form)
//   e <id>       edit user (interactive form)
//   r            reload
//   q            quit
//
//------------------------------------------------------------------------------

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/userdesk/internal/api"
	"github.com/yanizio/userdesk/internal/browse"
	"github.com/yanizio/userdesk/internal/config"
	"github.com/yanizio/userdesk/internal/form"
	"github.com/yanizio/userdesk/internal/server"
	"github.com/yanizio/userdesk/internal/user"
)

func runConsole(ctx context.Context, cfg *config.Config, cli *api.Client, log *zap.SugaredLogger) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	diag := server.NewDiag(cfg.Diag.ListenAddr, log)
	g.Go(func() error { return diag.Run(ctx) })

	// Quitting the loop cancels ctx so the diagnostics server shuts down too.
	g.Go(func() error {
		defer cancel()
		defer log.Infow("console loop finished")
		return consoleLoop(ctx, cli, log)
	})

	// A Ctrl-C cancel is a normal way to leave console mode, not a failure.
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func consoleLoop(ctx context.Context, cli *api.Client, log *zap.SugaredLogger) error {
	b := browse.New(cli, log)
	if err := b.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "load users: %v\n", err)
	}
	renderList(b)

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("userdesk> ")
		if !in.Scan() {
			return in.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch cmd {
		case "q", "quit", "exit":
			return nil
		case "n":
			err = b.Next(ctx)
		case "p":
			err = b.Prev(ctx)
		case "g":
			var n int
			if n, err = strconv.Atoi(arg); err != nil {
				err = fmt.Errorf("bad page number %q", arg)
				break
			}
			err = b.GoTo(ctx, n)
		case "s":
			err = b.Search(ctx, arg)
		case "o":
			err = b.SortBy(ctx, arg)
		case "d":
			err = consoleDelete(ctx, b, arg)
		case "c":
			err = consoleCreate(ctx, cli, log, b)
		case "e":
			err = consoleEdit(ctx, cli, log, b, arg)
		case "r":
			err = b.Load(ctx)
		default:
			fmt.Println("commands: n p g <n> s <term> o <column> d <id> c e <id> r q")
			continue
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		renderList(b)
	}
}

func renderList(b *browse.Controller) {
	printUsers(b.Rows())
	m := b.Meta()
	fmt.Printf("page %d/%d, %d user(s) total", m.Page, m.TotalPages, m.Total)
	if s := b.Filters().Search; s != "" {
		fmt.Printf(", search %q", s)
	}
	fmt.Println()
}

func consoleDelete(ctx context.Context, b *browse.Controller, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("bad user id %q", arg)
	}
	return b.Delete(ctx, id)
}

func consoleCreate(ctx context.Context, cli *api.Client, log *zap.SugaredLogger, b *browse.Controller) error {
	c := form.NewCreate(cli, log)
	promptAllFields(c)
	if err := submitForm(ctx, c, "User created."); err != nil {
		return err
	}
	return b.Load(ctx)
}

func consoleEdit(ctx context.Context, cli *api.Client, log *zap.SugaredLogger, b *browse.Controller, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("bad user id %q", arg)
	}

	c, err := form.NewEdit(ctx, cli, log, id)
	if err != nil {
		return err
	}

	// Show current values; empty answer keeps the existing one.
	in := bufio.NewScanner(os.Stdin)
	for _, f := range user.FieldOrder {
		for {
			fmt.Printf("%s [%s]: ", user.Label(f), c.Value(f))
			if !in.Scan() {
				return in.Err()
			}
			v := strings.TrimSpace(in.Text())
			if v != "" {
				c.SetField(f, v)
			}
			c.Blur(f)
			if msg := c.FieldError(f); msg != "" {
				fmt.Printf("  %s\n", msg)
				continue
			}
			break
		}
	}

	if err := submitForm(ctx, c, "User updated."); err != nil {
		return err
	}
	return b.Load(ctx)
}
