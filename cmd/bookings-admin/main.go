// Command bookings-admin lists bookings and changes their status from a
// terminal, behind the same session and admin role checks as the dashboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/flexora/physio-booking/internal/app/bootstrap"
	"github.com/flexora/physio-booking/internal/auth"
	"github.com/flexora/physio-booking/internal/bookings"
	appconfig "github.com/flexora/physio-booking/internal/config"
	"github.com/flexora/physio-booking/internal/dashboard"
	"github.com/flexora/physio-booking/pkg/logging"
)

const usage = `usage: bookings-admin [--token TOKEN] <command>

commands:
  list                      show bookings, newest first
  set-status <id> <status>  set status (pending, confirmed, completed, cancelled)
  logout                    revoke the token
`

type cli struct {
	verifier *auth.Verifier
	guard    dashboard.Authorizer
	store    dashboard.Store
	logger   *logging.Logger
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.BuildPostgresPool(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if pool == nil {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	defer pool.Close()

	rdb := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	app := bootstrap.BuildApp(cfg, bootstrap.Deps{Pool: pool, Redis: rdb}, logger)
	c := &cli{
		verifier: app.Verifier,
		guard:    app.Guard,
		store:    app.Bookings,
		logger:   logger,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	os.Exit(c.run(ctx, os.Args[1:]))
}

func (c *cli) run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("bookings-admin", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	token := fs.String("token", os.Getenv("FLEXORA_ADMIN_TOKEN"), "admin access token")
	fs.Usage = func() { fmt.Fprint(c.stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	// A bad token is not an error here; the guard turns it into a sign-in redirect.
	session, _ := c.verifier.Session(ctx, *token)

	view := dashboard.New(c.guard, c.store,
		dashboard.WithSignOut(c.verifier),
		dashboard.WithLogger(c.logger),
		dashboard.WithNotifier(dashboard.NotifierFunc(func(t dashboard.Toast) {
			fmt.Fprintf(c.stderr, "[%s] %s\n", t.Kind, t.Text)
		})),
	)

	d, err := view.Load(ctx, session)
	if !d.Allowed {
		fmt.Fprintf(c.stderr, "redirect: %s\n", d.Redirect)
		return 1
	}

	switch rest[0] {
	case "list":
		if err != nil {
			return 1
		}
		c.printBookings(view.Bookings())
	case "set-status":
		if len(rest) != 3 {
			fs.Usage()
			return 2
		}
		status, perr := bookings.ParseStatus(rest[2])
		if perr != nil {
			fmt.Fprintln(c.stderr, perr)
			return 2
		}
		if err := view.UpdateStatus(ctx, rest[1], status); err != nil {
			if errors.Is(err, bookings.ErrBookingNotFound) {
				fmt.Fprintf(c.stderr, "no booking with id %s\n", rest[1])
			}
			return 1
		}
		c.printBookings(view.Bookings())
	case "logout":
		if err := view.SignOut(ctx); err != nil {
			return 1
		}
	default:
		fs.Usage()
		return 2
	}
	return 0
}

func (c *cli) printBookings(rows []bookings.Booking) {
	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tNAME\tPHONE\tSERVICE\tPRICE\tDATE\tTIME\tSTATUS")
	for _, b := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			b.ID, b.CreatedAt.Format("2006-01-02 15:04"), b.FullName, b.Phone,
			b.ServiceName, b.Price, b.PreferredDate, b.PreferredTime, b.Status)
	}
	_ = tw.Flush()
}
