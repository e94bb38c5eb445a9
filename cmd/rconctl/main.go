// Command rconctl is a small administrative CLI built on top of the
// rcon-go library: rconctl -config rconctl.yaml <command> [args...].
// It is a demonstration of how to wire the library together, not part
// of its public API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hllrcon/rcon-go/auditlog"
	"github.com/hllrcon/rcon-go/commands"
	"github.com/hllrcon/rcon-go/config"
	"github.com/hllrcon/rcon-go/pool"
	"github.com/hllrcon/rcon-go/session"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rconctl", flag.ContinueOnError)
	configPath := fs.String("config", "rconctl.yaml", "path to config file")
	version := fs.Int("version", 2, "command protocol version (1 or 2)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Pool.LogLevel),
	})))

	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: rconctl -config <path> <command> [args...]")
	}
	cmdName, cmdArgs := rest[0], rest[1:]

	p := pool.New(
		cfg.Pool.Server.Host,
		cfg.Pool.Server.Port,
		cfg.Pool.Server.Password,
		cfg.Pool.MaxWorkers,
		session.WithWireVersion(session.WireVersion(cfg.Pool.WireVersion)),
	)
	defer func() {
		if err := p.Close(context.Background()); err != nil {
			slog.Warn("closing pool", "error", err)
		}
	}()

	exec, closeAudit, err := withAudit(ctx, cfg.Audit, p)
	if err != nil {
		return fmt.Errorf("setting up audit sink: %w", err)
	}
	defer closeAudit()

	c := commands.New(exec)
	return dispatch(ctx, c, cmdName, cmdArgs, *version)
}

func withAudit(ctx context.Context, cfg config.AuditConfig, next commands.Executor) (commands.Executor, func(), error) {
	if !cfg.Enabled {
		return next, func() {}, nil
	}

	if err := auditlog.Migrate(ctx, cfg.DSN); err != nil {
		return nil, nil, fmt.Errorf("migrating audit schema: %w", err)
	}
	sink, err := auditlog.NewPostgresSink(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("audit sink enabled")

	decorated := auditlog.Wrap(next, sink)
	return decorated, sink.Close, nil
}

func dispatch(ctx context.Context, c *commands.Commands, name string, args []string, version int) error {
	switch name {
	case "broadcast":
		if len(args) < 1 {
			return fmt.Errorf("broadcast requires a message")
		}
		return c.Broadcast(ctx, strings.Join(args, " "), version)
	case "players":
		res, err := c.GetPlayers(ctx, version)
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", res)
		return nil
	case "player":
		if len(args) < 1 {
			return fmt.Errorf("player requires a player id")
		}
		res, err := c.GetPlayer(ctx, args[0], version)
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", res)
		return nil
	case "kick":
		if len(args) < 2 {
			return fmt.Errorf("kick requires a player id and a reason")
		}
		ok, err := c.KickPlayer(ctx, args[0], strings.Join(args[1:], " "), version)
		if err != nil {
			return err
		}
		fmt.Println("kicked:", ok)
		return nil
	case "ban":
		if len(args) < 2 {
			return fmt.Errorf("ban requires a player id and a reason")
		}
		return c.BanPlayer(ctx, args[0], strings.Join(args[1:], " "), "rconctl", 0, version)
	case "changemap":
		if len(args) < 1 {
			return fmt.Errorf("changemap requires a map name")
		}
		return c.ChangeMap(ctx, args[0], version)
	case "maprotation":
		res, err := c.GetMapRotation(ctx, version)
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", res)
		return nil
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
