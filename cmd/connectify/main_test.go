package main

import (
	"context"
	"testing"

	"github.com/connectify/connectify/internal/config"
)

func TestRunVersionAndHelp(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"version"}, {"-v"}, {"help"}, {"--help"}} {
		if err := run(args); err != nil {
			t.Errorf("run(%v) = %v", args, err)
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run([]string{"frobnicate"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestBuildServicesWiresSessionTokenSource(t *testing.T) {
	t.Setenv("CONNECTIFY_TOKEN", "tok-from-env")
	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	svc, err := buildServices(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if svc.Session.Token() != "tok-from-env" {
		t.Errorf("session token = %q, want the env token", svc.Session.Token())
	}
	if svc.Auth == nil || svc.Catalog == nil || svc.Cart == nil || svc.Orders == nil || svc.Users == nil {
		t.Error("facade wiring incomplete")
	}
}

func TestNewLoggerNopWithoutPath(t *testing.T) {
	cfg := &config.Config{}
	log := newLogger(cfg)
	// A nop logger must swallow writes without error.
	log.Info().Msg("ignored")
}
