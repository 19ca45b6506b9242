// cmd/userdesk/commands.go
//
// Userdesk – one-shot subcommands.
//
// Context
//   Each run* function owns one subcommand: flag parsing, the controller or
//   client calls, and rendering.  All presentation lives in this package;
//   the internal packages never print.
//
//------------------------------------------------------------------------------

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/yanizio/userdesk/internal/api"
	"github.com/yanizio/userdesk/internal/form"
	"github.com/yanizio/userdesk/internal/user"
)

// -----------------------------------------------------------------------------
// list
// -----------------------------------------------------------------------------

func runList(ctx context.Context, cli *api.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var f api.Filters
	var p api.Page
	fs.StringVar(&f.Name, "name", "", "filter by name")
	fs.StringVar(&f.Email, "email", "", "filter by email")
	fs.StringVar(&f.Country, "country", "", "filter by country")
	fs.StringVar(&f.FromDate, "from", "", "created on or after (YYYY-MM-DD)")
	fs.StringVar(&f.ToDate, "to", "", "created on or before (YYYY-MM-DD)")
	fs.StringVar(&f.Search, "search", "", "cross-field substring search")
	fs.IntVar(&p.Page, "page", 0, "page number (default 1)")
	fs.IntVar(&p.Limit, "limit", 0, "rows per page (default 10)")
	fs.StringVar(&p.SortBy, "sort-by", "", "sort column (default createdAt)")
	fs.StringVar(&p.SortOrder, "sort-order", "", "ASC or DESC (default DESC)")
	fs.Parse(args)

	res, err := cli.List(ctx, f, p)
	if err != nil {
		return err
	}

	printUsers(res.Users)
	m := res.Pagination
	fmt.Printf("page %d/%d, %d user(s) total\n", m.Page, m.TotalPages, m.Total)
	return nil
}

func printUsers(rows []user.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOUNTRY\tBIRTHDAY\tMOBILE")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Email, r.Country, r.Birthday, r.MobileNumber)
	}
	w.Flush()
}

// -----------------------------------------------------------------------------
// get
// -----------------------------------------------------------------------------

func runGet(ctx context.Context, cli *api.Client, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	fs.Parse(args)

	id, err := positionalID(fs)
	if err != nil {
		return err
	}

	rec, err := cli.Get(ctx, id)
	if err != nil {
		return err
	}
	printRecord(rec)
	return nil
}

func printRecord(r *user.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%d\n", r.ID)
	for _, f := range user.FieldOrder {
		fmt.Fprintf(w, "%s\t%s\n", user.Label(f), r.Fields()[f])
	}
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created\t%s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

// -----------------------------------------------------------------------------
// create
// -----------------------------------------------------------------------------

func runCreate(ctx context.Context, cli *api.Client, log *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	flagVals := fieldFlags(fs)
	fs.Parse(args)

	c := form.NewCreate(cli, log)

	anyFlag := false
	for f, v := range flagVals {
		if *v != "" {
			c.SetField(f, *v)
			anyFlag = true
		}
	}

	if !anyFlag {
		promptAllFields(c)
	}

	return submitForm(ctx, c, "User created.")
}

// fieldFlags registers one string flag per editable field and returns the
// destinations keyed by canonical field name.
func fieldFlags(fs *flag.FlagSet) map[string]*string {
	return map[string]*string{
		user.FieldName:         fs.String("name", "", "full name"),
		user.FieldAboutYou:     fs.String("about", "", "about-you text"),
		user.FieldBirthday:     fs.String("birthday", "", "birthday (YYYY-MM-DD)"),
		user.FieldMobileNumber: fs.String("mobile", "", "mobile number"),
		user.FieldEmail:        fs.String("email", "", "email address"),
		user.FieldCountry:      fs.String("country", "", "country"),
	}
}

// promptAllFields walks the canonical field order, prompting until each
// field validates clean.  Blur after every answer mirrors the form flow:
// touched fields revalidate live.
func promptAllFields(c *form.Controller) {
	in := bufio.NewScanner(os.Stdin)
	for _, f := range user.FieldOrder {
		for {
			fmt.Printf("%s: ", user.Label(f))
			if !in.Scan() {
				return
			}
			c.SetField(f, strings.TrimSpace(in.Text()))
			c.Blur(f)
			if msg := c.FieldError(f); msg != "" {
				fmt.Printf("  %s\n", msg)
				continue
			}
			break
		}
	}
}

// submitForm drives one submit cycle and renders the outcome.
func submitForm(ctx context.Context, c *form.Controller, okMsg string) error {
	if err := c.Submit(ctx); err != nil {
		return err
	}

	if c.Success() {
		fmt.Println(okMsg)
		return nil
	}

	for _, f := range user.FieldOrder {
		if msg := c.FieldError(f); msg != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", user.Label(f), msg)
		}
	}
	if msg := c.FieldError(form.GeneralField); msg != "" {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	return errors.New("submission failed")
}

// -----------------------------------------------------------------------------
// update
// -----------------------------------------------------------------------------

func runUpdate(ctx context.Context, cli *api.Client, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	flagVals := fieldFlags(fs)
	fs.Parse(args)

	id, err := positionalID(fs)
	if err != nil {
		return err
	}

	// Only fields the caller actually set are validated and sent.
	fields := make(map[string]string)
	for f, v := range flagVals {
		if *v != "" {
			fields[f] = *v
		}
	}
	if len(fields) == 0 {
		return errors.New("no fields to update; pass at least one field flag")
	}

	if msgs := user.ValidateRecord(fields, true); len(msgs) > 0 {
		for _, m := range msgs {
			fmt.Fprintln(os.Stderr, m)
		}
		return errors.New("validation failed")
	}

	body := make(map[string]any, len(fields))
	for f, v := range fields {
		if f == user.FieldBirthday {
			if d, ok := user.NormalizeDate(v); ok {
				v = d
			}
		}
		body[f] = v
	}

	msg, err := cli.Update(ctx, id, body)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "User updated."
	}
	fmt.Println(msg)
	return nil
}

// -----------------------------------------------------------------------------
// delete
// -----------------------------------------------------------------------------

func runDelete(ctx context.Context, cli *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("y", false, "skip the confirmation prompt")
	fs.Parse(args)

	id, err := positionalID(fs)
	if err != nil {
		return err
	}

	if !*yes {
		fmt.Printf("delete user %d? [y/N] ", id)
		in := bufio.NewScanner(os.Stdin)
		if !in.Scan() || strings.ToLower(strings.TrimSpace(in.Text())) != "y" {
			fmt.Println("aborted")
			return nil
		}
	}

	msg, err := cli.Delete(ctx, id)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "User deleted."
	}
	fmt.Println(msg)
	return nil
}

// -----------------------------------------------------------------------------
// shared helpers
// -----------------------------------------------------------------------------

// positionalID reads the single required id argument left after flag parsing.
func positionalID(fs *flag.FlagSet) (int64, error) {
	if fs.NArg() != 1 {
		return 0, errors.New("expected exactly one user id argument")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad user id %q", fs.Arg(0))
	}
	return id, nil
}
