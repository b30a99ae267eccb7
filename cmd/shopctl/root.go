package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hfashion/storefront/internal/pkg/apiclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every shopctl command
type app struct {
	v      *viper.Viper
	client *apiclient.Client
	token  string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "shopctl",
		Short:        "Command line client for the HFashion storefront API",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.saveSession()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml)")
	flags.String("server", "http://localhost:8080", "storefront base URL")
	flags.String("session", "", "session token; overrides the saved session")
	flags.String("session-file", defaultSessionFile(), "where the session token is kept between runs")
	flags.Duration("timeout", 15*time.Second, "request timeout")
	flags.Uint("retries", 3, "attempts for idempotent requests")
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvPrefix("SHOPCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newHealthCmd(a),
		newProductsCmd(a),
		newCategoriesCmd(a),
		newCartCmd(a),
		newOrdersCmd(a),
		newWishlistCmd(a),
		newUserCmd(a),
		newEventsCmd(a),
	)
	return root
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shopctl_session"
	}
	return filepath.Join(home, ".shopctl", "session")
}

func (a *app) init() error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	a.token = a.v.GetString("session")
	if a.token == "" {
		data, err := os.ReadFile(a.v.GetString("session-file"))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read session file: %w", err)
		}
		a.token = strings.TrimSpace(string(data))
	}

	opts := []apiclient.Option{
		apiclient.WithRetry(a.v.GetUint("retries"), 200*time.Millisecond),
	}
	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, apiclient.WithHTTPClient(&http.Client{Timeout: timeout}))
	}
	if a.token != "" {
		opts = append(opts, apiclient.WithSessionToken(a.token))
	}

	a.client = apiclient.New(a.v.GetString("server"), opts...)
	return nil
}

// saveSession persists a session token issued during this run
func (a *app) saveSession() error {
	if a.client == nil {
		return nil
	}
	token := a.client.SessionToken()
	if token == "" || token == a.token || a.v.GetString("session") != "" {
		return nil
	}

	path := a.v.GetString("session-file")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
