package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"printdesk/client"
	"printdesk/client/feed"
	"printdesk/client/guard"
	"printdesk/client/session"
	"printdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - login:    Authenticate and cache the session locally
// - logout:   Clear the cached session
// - jobs:     List the shop's print jobs, optionally filtered by status tab
// - complete: Mark one job COMPLETED
// - watch:    Follow the shop's job feed live over the realtime gateway
// - pricing:  List the shop's pricing rules

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "Account email")
	loginPassword := loginCmd.String("password", "", "Account password")

	logoutCmd := flag.NewFlagSet("logout", flag.ExitOnError)

	jobsCmd := flag.NewFlagSet("jobs", flag.ExitOnError)
	jobsTab := jobsCmd.String("tab", "all", "Status tab: all, pending, processing or completed")

	completeCmd := flag.NewFlagSet("complete", flag.ExitOnError)
	completeID := completeCmd.String("id", "", "Print job id")

	watchCmd := flag.NewFlagSet("watch", flag.ExitOnError)

	pricingCmd := flag.NewFlagSet("pricing", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	flags := dashFlags{
		Login:    loginFlags{cmd: loginCmd, email: loginEmail, password: loginPassword},
		Logout:   logoutCmd,
		Jobs:     jobsFlags{cmd: jobsCmd, tab: jobsTab},
		Complete: completeFlags{cmd: completeCmd, id: completeID},
		Watch:    watchCmd,
		Pricing:  pricingCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type dashFlags struct {
	Login    loginFlags
	Logout   *flag.FlagSet
	Jobs     jobsFlags
	Complete completeFlags
	Watch    *flag.FlagSet
	Pricing  *flag.FlagSet
}

type loginFlags struct {
	cmd      *flag.FlagSet
	email    *string
	password *string
}

type jobsFlags struct {
	cmd *flag.FlagSet
	tab *string
}

type completeFlags struct {
	cmd *flag.FlagSet
	id  *string
}

func runSubcommand(ctx context.Context, flags *dashFlags) error {
	switch os.Args[1] {
	case "login":
		return handleLogin(ctx, flags)
	case "logout":
		return handleLogout(flags)
	case "jobs":
		return handleJobs(ctx, flags)
	case "complete":
		return handleComplete(ctx, flags)
	case "watch":
		return handleWatch(ctx, flags)
	case "pricing":
		return handlePricing(ctx, flags)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: shopdash <subcommand> [flags]

Subcommands:
  login     Authenticate and cache the session locally
  logout    Clear the cached session
  jobs      List the shop's print jobs (-tab all|pending|processing|completed)
  complete  Mark one job COMPLETED (-id <uuid>)
  watch     Follow the shop's job feed live
  pricing   List the shop's pricing rules

Environment:
  PRINTDESK_API       REST base URL (default http://localhost:8080)
  PRINTDESK_GATEWAY   Realtime gateway URL (default ws://localhost:8081/ws)`)
}

func apiBase() string {
	if base := os.Getenv("PRINTDESK_API"); base != "" {
		return base
	}

	return "http://localhost:8080"
}

func gatewayBase() string {
	if base := os.Getenv("PRINTDESK_GATEWAY"); base != "" {
		return base
	}

	return "ws://localhost:8081/ws"
}

func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}

	dir := filepath.Join(home, ".shopdash")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", errors.Wrap(err, "failed to create session directory")
	}

	return filepath.Join(dir, "session.db"), nil
}

// openSession hydrates the cached session and enforces the shop-owner guard
// client-side. The server re-checks authorization on every call regardless.
func openSession() (*session.Store, *session.Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, nil, err
	}

	store, err := session.Open(path)
	if err != nil {
		return nil, nil, err
	}

	switch guard.Evaluate(store.Current(), entity.RoleShopOwner) {
	case guard.Unauthenticated:
		_ = store.Close()

		return nil, nil, errors.New("not logged in, run: shopdash login")
	case guard.WrongRole:
		_ = store.Close()

		return nil, nil, errors.New("this account is not a shop owner")
	case guard.Authorized:
	}

	return store, store.Current(), nil
}

func handleLogin(ctx context.Context, flags *dashFlags) error {
	if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}
	if *flags.Login.email == "" || *flags.Login.password == "" {
		return errors.New("both -email and -password are required")
	}

	api := client.New(apiBase())

	result, err := api.Login(ctx, *flags.Login.email, *flags.Login.password)
	if err != nil {
		return err
	}

	path, err := sessionPath()
	if err != nil {
		return err
	}

	store, err := session.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := store.Login(result.Token)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", sess.Name, sess.Role)

	return nil
}

func handleLogout(flags *dashFlags) error {
	if err := flags.Logout.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	path, err := sessionPath()
	if err != nil {
		return err
	}

	store, err := session.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Logout(); err != nil {
		return err
	}

	fmt.Println("Logged out")

	return nil
}

func handleJobs(ctx context.Context, flags *dashFlags) error {
	if err := flags.Jobs.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	store, sess, err := openSession()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	shopFeed, err := newFeed(sess)
	if err != nil {
		return err
	}

	if err := shopFeed.Refresh(ctx); err != nil {
		return err
	}

	printJobs(shopFeed.Filter(*flags.Jobs.tab))

	return nil
}

func handleComplete(ctx context.Context, flags *dashFlags) error {
	if err := flags.Complete.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	jobID, err := uuid.Parse(*flags.Complete.id)
	if err != nil {
		return errors.Wrap(err, "invalid -id")
	}

	store, sess, err := openSession()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	shopFeed, err := newFeed(sess)
	if err != nil {
		return err
	}

	if err := shopFeed.Refresh(ctx); err != nil {
		return err
	}

	if err := shopFeed.MarkCompleted(ctx, jobID); err != nil {
		return err
	}

	fmt.Printf("Job %s marked COMPLETED\n", jobID)

	return nil
}

func handleWatch(ctx context.Context, flags *dashFlags) error {
	if err := flags.Watch.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	store, sess, err := openSession()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	shopFeed, err := newFeed(sess)
	if err != nil {
		return err
	}

	if err := shopFeed.Refresh(ctx); err != nil {
		return err
	}

	go func() {
		if err := shopFeed.Run(ctx, gatewayBase(), sess.Token); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Realtime feed stopped", slog.Any("error", err))
		}
	}()

	fmt.Println("Watching for job updates (Ctrl+C to stop)")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			status := "ONLINE"
			if !shopFeed.Connected() {
				status = "OFFLINE"
			}
			fmt.Printf("\n[%s] %s\n", time.Now().Format(time.TimeOnly), status)
			printJobs(shopFeed.Jobs())
		}
	}
}

func handlePricing(ctx context.Context, flags *dashFlags) error {
	if err := flags.Pricing.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	store, sess, err := openSession()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	shopOwnerID, err := uuid.Parse(sess.ShopOwnerID)
	if err != nil {
		return errors.Wrap(err, "session has no shop id")
	}

	api := client.New(apiBase(), client.WithToken(sess.Token))

	rules, err := api.ListPricing(ctx, shopOwnerID)
	if err != nil {
		return err
	}

	for _, rule := range rules {
		fmt.Printf("%-36s  %-8s %-12s single %.2f  double %.2f\n",
			rule.ID, rule.PaperType, rule.PrintType, rule.SingleSided, rule.DoubleSided)
	}

	return nil
}

func newFeed(sess *session.Session) (*feed.Feed, error) {
	shopOwnerID, err := uuid.Parse(sess.ShopOwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "session has no shop id")
	}

	api := client.New(apiBase(), client.WithToken(sess.Token))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return feed.New(api, shopOwnerID, logger), nil
}

func printJobs(jobs []*entity.PrintJob) {
	if len(jobs) == 0 {
		fmt.Println("  (no jobs)")

		return
	}

	for _, job := range jobs {
		fmt.Printf("  %-36s  #%s  %-10s  %-12s  %d copies  %.2f\n",
			job.ID, job.TokenNumber, job.Status, job.CustomerName, job.NoofCopies, job.TotalCost)
	}
}
