// Package cli implements medcardctl, a command line front end for the
// medcard API built on internal/client.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/client"
	"github.com/rryowa/medcard/internal/models"
)

var errUsage = errors.New("usage")

type App struct {
	client    *client.Client
	publicURL string
	reader    *bufio.Reader
	out       io.Writer
	log       *zap.SugaredLogger
}

func NewApp(c *client.Client, publicURL string, in io.Reader, out io.Writer, log *zap.SugaredLogger) (*App, error) {
	a := &App{
		client:    c,
		publicURL: publicURL,
		reader:    bufio.NewReader(in),
		out:       out,
		log:       log,
	}

	err := c.Events().OnSessionExpired(func() {
		fmt.Fprintln(a.out, "Your session has expired. Run 'medcardctl login' to sign in again.")
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to session events: %w", err)
	}
	return a, nil
}

const usageText = `Usage: medcardctl <command> [flags]

Commands:
  register -email E [-name N]     create an account
  login -email E                  sign in
  logout                          sign out and forget local credentials
  profile                         show the profile
  health [-notes]                 show health information
  allergies [-notes]              list allergies
  medications [-notes]            list medications
  contacts                        list emergency contacts
  addresses                       list addresses
  dashboard                       profile, health, contacts and addresses at once
  export [-o FILE]                write the full record, notes included, as JSON
  token                           show the emergency token and its URL
  regenerate                      replace the emergency token
  view <token>                    show the public emergency view for a token
`

// Run executes one command. Errors are already user-facing.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usageText)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.client.Auth.Logout(ctx)
	case "profile":
		return a.show(a.client.Profile.Get(ctx))
	case "health":
		notes, err := parseNotesFlag(cmd, rest)
		if err != nil {
			return err
		}
		return a.show(a.client.Health.Get(ctx, notes))
	case "allergies":
		notes, err := parseNotesFlag(cmd, rest)
		if err != nil {
			return err
		}
		return a.show(a.client.Allergies.List(ctx, notes))
	case "medications":
		notes, err := parseNotesFlag(cmd, rest)
		if err != nil {
			return err
		}
		return a.show(a.client.Medications.List(ctx, notes))
	case "contacts":
		return a.show(a.client.EmergencyContacts.List(ctx))
	case "addresses":
		return a.show(a.client.Addresses.List(ctx))
	case "dashboard":
		return a.show(a.client.Dashboard(ctx))
	case "export":
		return a.export(ctx, rest)
	case "token":
		return a.token(a.client.EmergencyTokens.Get(ctx))
	case "regenerate":
		return a.token(a.client.EmergencyTokens.Regenerate(ctx))
	case "view":
		if len(rest) != 1 {
			return fmt.Errorf("%w: medcardctl view <token>", errUsage)
		}
		return a.show(a.client.PublicView.Get(ctx, rest[0]))
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usageText)
		return nil
	default:
		fmt.Fprint(a.out, usageText)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "full name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.RegisterRequest{FullName: *name}
	var err error
	if req.Email, err = a.emailOrPrompt(*email); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out); err != nil {
		return err
	}

	resp, err := a.client.Auth.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered, user id %s\n", resp.UserID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.LoginRequest{}
	var err error
	if req.Email, err = a.emailOrPrompt(*email); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out); err != nil {
		return err
	}

	if _, err := a.client.Auth.Login(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	path := fs.String("o", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := a.client.Export(ctx)
	if err != nil {
		return err
	}
	if *path == "" {
		return a.show(data, nil)
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(*path, append(b, '\n'), 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(a.out, "Exported to %s\n", *path)
	return nil
}

func (a *App) emailOrPrompt(email string) (string, error) {
	if email != "" {
		return email, nil
	}
	return getSimpleText(a.reader, "Enter email", a.out)
}

func (a *App) token(tok *models.EmergencyToken, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Token: %s\nURL:   %s\n", tok.Token, client.EmergencyURL(a.publicURL, tok.Token))
	if !tok.Active {
		fmt.Fprintln(a.out, "The token is not active.")
	}
	return nil
}

func (a *App) show(v any, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseNotesFlag(name string, args []string) (bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	notes := fs.Bool("notes", false, "include free-text notes")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	return *notes, nil
}

// ExitCode maps a Run error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		return 1
	}
}

// Describe renders an error for the terminal.
func Describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrSessionExpired):
		return "session expired"
	case errors.As(err, &apiErr):
		return strings.TrimSpace(apiErr.Message)
	default:
		return err.Error()
	}
}
