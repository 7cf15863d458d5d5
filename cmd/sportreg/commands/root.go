package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sportreg/internal/app"
	"sportreg/internal/flash"
	"sportreg/internal/logging"
)

const defaultServer = "http://127.0.0.1:5000"

// errRejected marks a command whose outcome was already printed as an error
// flash.
var errRejected = errors.New("rejected")

var (
	home          string
	serverURL     string
	timeout       time.Duration
	redirectDelay time.Duration
	verbose       bool
	htmlOutput    bool

	appCtx *app.App
	logger *zap.Logger
)

func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errRejected) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sportreg",
		Short:         "Sports registration client",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			var err error
			logger, err = logging.New(level, true)
			if err != nil {
				return err
			}

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".sportreg")
			}
			if serverURL == "" {
				serverURL = os.Getenv("SPORTREG_SERVER")
			}
			if serverURL == "" {
				serverURL = defaultServer
			}

			appCtx, err = app.New(app.ClientConfig{
				Home:          home,
				ServerURL:     serverURL,
				Timeout:       timeout,
				RedirectDelay: redirectDelay,
				Logger:        logger,
			})
			if err != nil {
				return err
			}
			appCtx.OnFlash = printFlash(cmd.OutOrStdout(), htmlOutput)
			return appCtx.Restore()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = logger.Sync() }()
			if appCtx == nil {
				return nil
			}
			return appCtx.Persist()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.sportreg)")
	root.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "server base URL (env SPORTREG_SERVER, default "+defaultServer+")")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	root.PersistentFlags().DurationVar(&redirectDelay, "redirect-delay", 0, "delay before following a logout redirect (default 1s)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&htmlOutput, "html", false, "print flash messages as the sanitized markup a page would show")

	root.AddCommand(signupCmd(), loginCmd(), logoutCmd(), enrollCmd(), registrantsCmd())
	return root
}

func printFlash(w io.Writer, markup bool) func(flash.Element) {
	return func(el flash.Element) {
		if markup {
			fmt.Fprintln(w, el.HTML())
			return
		}
		fmt.Fprintf(w, "[%s] %s\n", el.Status(), el.Text)
	}
}

// settle turns the final flash of a page flow into the command result.
func settle(out app.Outcome) error {
	last, ok := out.Last()
	if !ok || last.HasClass("error") {
		return errRejected
	}
	return nil
}
