package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/opd-ai/ipcchannel/config"
	"github.com/opd-ai/ipcchannel/ipc"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

// version is overridable at link time:
//
//	go build -ldflags "-X main.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// pollInterval bounds each receive of a server without timeout so that
// cancellation is noticed; a blocked receive cannot be interrupted otherwise.
const pollInterval = 250 * time.Millisecond

// Execute parses args and runs the selected ipcchan role. Server output goes
// to stdout, client input comes from the positional arguments or stdin.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("ipcchan", flag.ContinueOnError)

	// ── channel ──────────────────────────────────────────────────
	role := string(cfg.Role)
	fs.StringVarP(&role, "role", "r", role, "Role: server, client or unlink")
	fs.StringVarP(&cfg.Name, "name", "n", cfg.Name, "Channel name (server default: random)")
	fs.BoolVar(&cfg.NoPrefix, "no-prefix", cfg.NoPrefix, "Use the name verbatim as socket path")
	fs.Uint64VarP(&cfg.MaxMessageSize, "max-message-size", "s", cfg.MaxMessageSize, "Maximum message size including terminator")
	fs.Uint64Var(&cfg.MaxMessages, "max-messages", cfg.MaxMessages, "Maximum queued messages (ignored by unix sockets)")

	// ── behaviour ────────────────────────────────────────────────
	fs.DurationVarP(&cfg.Timeout, "timeout", "w", cfg.Timeout, "Send/receive timeout (0 waits forever)")
	fs.IntVarP(&cfg.Count, "count", "c", cfg.Count, "Messages to receive before exiting (0 = unlimited)")

	// ── output ───────────────────────────────────────────────────
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "ipcchan %s\n", version)
		return nil
	}

	cfg.Role = config.Role(role)
	if cfg.Role == config.RoleServer && cfg.Name == "" {
		cfg.Name = "ipcchan-" + uuid.NewString()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.Level())
	ipc.SetLogger(logger)
	defer ipc.SetLogger(nil)

	switch cfg.Role {
	case config.RoleServer:
		return runServer(ctx, cfg, logger, stdout)
	case config.RoleClient:
		return runClient(cfg, fs.Args(), stdin)
	default:
		return runUnlink(cfg, stdout)
	}
}

func openChannel(cfg *config.Config, side ipc.Side) (*ipc.UnixDomainSocket, error) {
	create := ipc.NewUnixDomainSocket
	if cfg.NoPrefix {
		create = ipc.NewUnixDomainSocketNoPrefix
	}
	return create(cfg.Name, ipc.Blocking, side, cfg.MaxMessageSize, cfg.MaxMessages)
}

func runServer(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger, stdout io.Writer) error {
	server, err := openChannel(cfg, ipc.Server)
	if err != nil {
		return err
	}
	defer server.Destroy()

	logger.WithFields(logrus.Fields{
		"channel": server.Name(),
		"count":   cfg.Count,
	}).Info("Listening")

	wait := cfg.Timeout
	if wait == 0 {
		wait = pollInterval
	}

	for received := 0; cfg.Count == 0 || received < cfg.Count; {
		if err := ctx.Err(); err != nil {
			return nil
		}

		msg, err := server.TimedReceive(wait)
		if errors.Is(err, ipc.ErrTimeout) && cfg.Timeout == 0 {
			continue
		}
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(stdout, msg); err != nil {
			return err
		}
		received++
	}
	return nil
}

func runClient(cfg *config.Config, messages []string, stdin io.Reader) error {
	client, err := openChannel(cfg, ipc.Client)
	if err != nil {
		return err
	}
	defer client.Destroy()

	if len(messages) > 0 {
		for _, msg := range messages {
			if err := client.TimedSend(msg, cfg.Timeout); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := client.TimedSend(scanner.Text(), cfg.Timeout); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runUnlink(cfg *config.Config, stdout io.Writer) error {
	unlink := ipc.UnlinkIfExists
	if cfg.NoPrefix {
		unlink = ipc.UnlinkIfExistsNoPrefix
	}

	existed, err := unlink(cfg.Name)
	if err != nil {
		return err
	}
	if existed {
		fmt.Fprintln(stdout, "removed")
	} else {
		fmt.Fprintln(stdout, "absent")
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `ipcchan – Local IPC Channel Tool v%s

Usage:
  ipcchan [-n name] [options]                 Serve a channel, print messages
  ipcchan -r client -n name [messages...]     Send arguments or stdin lines
  ipcchan -r unlink -n name                   Remove a leftover channel file

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment:
  Every option can be preset as IPCCHAN_<OPTION>, e.g. IPCCHAN_TIMEOUT=2s.

Examples:
  ipcchan -n roudi -c 1                       Print one message and exit
  echo "hello" | ipcchan -r client -n roudi   Send a line
  ipcchan -r client -n roudi -w 1s a b c      Send three messages
`)
}
