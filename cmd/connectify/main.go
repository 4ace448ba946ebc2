package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/connectify/connectify/internal/config"
	"github.com/connectify/connectify/internal/facade"
	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/internal/tui"
	"github.com/connectify/connectify/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Println("connectify " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "login":
			return runLogin(ctx, cfg)
		case "logout":
			return runLogout()
		default:
			printHelp()
			return fmt.Errorf("unknown command: %s", args[0])
		}
	}

	svc, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}

	app := tui.NewApp(svc, version)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// newLogger writes debug logs to the configured file, or discards
// them. The TUI owns the terminal, so logs never go to stderr.
func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.DebugLog == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

// tokenStore picks the credential source: an env token stays in
// memory, otherwise the token file under ~/.connectify is used.
func tokenStore(cfg *config.Config) (session.TokenStore, error) {
	if cfg.Token != "" {
		return session.NewMemTokenStore(cfg.Token), nil
	}
	path, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	return session.NewFileTokenStore(path), nil
}

// buildServices wires the client, session store, and facades that the
// TUI runs on. The session store is the client's token source, so a
// login or logout takes effect without rebuilding anything.
func buildServices(ctx context.Context, cfg *config.Config) (*tui.Services, error) {
	tokens, err := tokenStore(cfg)
	if err != nil {
		return nil, err
	}

	var sess *session.Store
	api := client.New(cfg.APIURL,
		func() string { return sess.Token() },
		client.WithLogger(newLogger(cfg)),
		client.WithTimeout(cfg.HTTPTimeout),
	)
	sess = session.NewStore(tokens, api)

	return &tui.Services{
		Session:    sess,
		Auth:       facade.NewAuth(api, sess),
		Catalog:    facade.NewCatalog(api, api),
		Brands:     facade.NewBrands(api, api),
		Categories: facade.NewCategories(api, api),
		Cart:       facade.NewCart(api, sess),
		Orders:     facade.NewOrders(api, sess, api),
		Users:      facade.NewUsers(api, api),
	}, nil
}

// runLogin prompts for credentials on the terminal and persists the
// session token on success.
func runLogin(ctx context.Context, cfg *config.Config) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read email: %w", err)
	}
	fmt.Print("password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	svc, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	res := svc.Auth.Login(ctx, facade.LoginInput{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimRight(password, "\r\n"),
	})
	if !res.OK {
		return fmt.Errorf("login failed: %s", res.Message)
	}
	fmt.Printf("Logged in as %s\n", res.Data.Email)
	return nil
}

func runLogout() error {
	path, err := config.TokenPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("Already logged out.")
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}

func printHelp() {
	fmt.Print(`connectify — electronics store in your terminal

Usage:
  connectify            open the store
  connectify login      log in with email and password
  connectify logout     clear the saved session
  connectify version    show version

Environment:
  CONNECTIFY_API_URL      backend base URL (default http://localhost:1512)
  CONNECTIFY_TOKEN        session token (overrides ~/.connectify/token)
  CONNECTIFY_DEBUG_LOG    file to append debug logs to
  CONNECTIFY_HTTP_TIMEOUT request timeout (default 30s)
`)
}
