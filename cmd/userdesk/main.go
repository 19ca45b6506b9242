// cmd/userdesk/main.go
//
// Userdesk – console entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (host-wide file → .env fallback).
//
//  2. Load configuration (defaults + optional conf/global.yaml + USERDESK_
//     environment overrides).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Build the API client against the configured base URL.
//
//  5. Dispatch the subcommand.  One-shot commands (list, get, create,
//     update, delete) run and exit; `console` starts the interactive loop
//     with the diagnostics server alongside.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yanizio/userdesk/internal/api"
	"github.com/yanizio/userdesk/internal/config"
	"github.com/yanizio/userdesk/internal/logger"
)

const serverEnvPath = "/usr/local/etc/userdesk/global.env"

const usage = `usage: userdesk <command> [flags]

commands:
  list      list users (filters, pagination, and sort flags)
  get       show one user by id
  create    create a user (field flags, or interactive prompts)
  update    update fields of a user by id (only provided flags are sent)
  delete    delete a user by id
  console   interactive browse/edit loop with diagnostics server

run "userdesk <command> -h" for the flags of each command.
`

// loadEnv prefers the host-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Logger ──────────────────────────────────────────────────────
	//
	logDir := cfg.Log.Dir
	if logDir == "" {
		logDir = filepath.Join(cfg.Paths.Root, "logs")
	}
	logOut, err := logger.New(logDir, cfg.Log.Console || runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 3.  API client ──────────────────────────────────────────────────
	//
	cli := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.Timeout) * time.Second,
		Log:     logOut,
	})

	//
	// ── 4.  Subcommand dispatch ─────────────────────────────────────────
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[2:]
	switch os.Args[1] {
	case "list":
		err = runList(ctx, cli, args)
	case "get":
		err = runGet(ctx, cli, args)
	case "create":
		err = runCreate(ctx, cli, logOut, args)
	case "update":
		err = runUpdate(ctx, cli, args)
	case "delete":
		err = runDelete(ctx, cli, args)
	case "console":
		err = runConsole(ctx, cfg, cli, logOut)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		logOut.Errorw("command failed", "command", os.Args[1], "err", err)
		fmt.Fprintf(os.Stderr, "userdesk %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}
