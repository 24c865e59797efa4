// Package cli implements shelfctl, a terminal client for the rentals API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snnyvrz/shelfshare/internal/session"
)

const (
	envAPI      = "SHELFSHARE_API"
	envPassword = "SHELFSHARE_PASSWORD"
	defaultAPI  = "http://localhost:8080"
)

type app struct {
	api     string
	email   string
	library bool

	client *session.Client
	out    io.Writer
}

func (a *app) authBase() string {
	if a.library {
		return "/api/library/auth"
	}
	return "/api/auth"
}

// NewRootCommand builds the shelfctl command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "shelfctl",
		Short:         "Browse and manage Shelfshare rentals from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			refreshPath := session.UserRefreshPath
			if a.library {
				refreshPath = session.LibraryRefreshPath
			}

			client, err := session.NewClient(a.api, session.WithRefreshPath(refreshPath))
			if err != nil {
				return err
			}
			a.client = client
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	api := os.Getenv(envAPI)
	if api == "" {
		api = defaultAPI
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.api, "api", api, "API base URL (env "+envAPI+")")
	flags.StringVar(&a.email, "email", "", "account email; commands that need a session log in first")
	flags.BoolVar(&a.library, "library", false, "act as a library account")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newMeCommand(a),
		newBooksCommand(a),
		newWalletCommand(a),
		newLibraryCommand(a),
	)

	return root
}

// Execute runs shelfctl with os.Args and returns the process exit code.
func Execute() int {
	root := NewRootCommand(os.Stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func promptPassword(prompt string) (string, error) {
	if pw := os.Getenv(envPassword); pw != "" {
		return pw, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal for the password prompt; set %s", envPassword)
	}

	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

var errEmailRequired = errors.New("--email is required")

// login opens a session for --email. Cookies live in the client's jar for
// the rest of the process.
func (a *app) login(ctx context.Context) (*profile, error) {
	if a.email == "" {
		return nil, errEmailRequired
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return nil, err
	}

	var p profile
	err = a.client.PostJSON(ctx, a.authBase()+"/login", map[string]string{
		"email":    a.email,
		"password": password,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func requireLibrary(a *app) error {
	if !a.library {
		return errors.New("this command needs --library")
	}
	return nil
}

func requireReader(a *app) error {
	if a.library {
		return errors.New("wallets belong to reader accounts; drop --library")
	}
	return nil
}
