// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/catchupdays/wishlist/catalog"
	"github.com/catchupdays/wishlist/fetcher"
	"github.com/catchupdays/wishlist/tui"
	"github.com/catchupdays/wishlist/urlsync"
)

var (
	serverURL   string
	query       string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "wishlist-browse",
	Short: "Browse the Catchup Days wishlist in the terminal",
	Long:  "wishlist-browse filters the Catchup Days wishlist with tags and keeps a shareable /wishlist URL in step with the filters. The final URL is printed on exit.",
	RunE:  runBrowse,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the items matching --query and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3318", "Wishlist server base URL")
	rootCmd.PersistentFlags().StringVar(&query, "query", "", "Initial filters as a query string, e.g. language=Rust&label=FE")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Attribute catalog YAML (built-in catalog otherwise)")
	rootCmd.AddCommand(listCmd)
}

// pageURL builds the /wishlist location for server and query.
func pageURL(server, query string) (*urlsync.Location, error) {
	raw := strings.TrimRight(server, "/") + "/wishlist"
	if q := strings.TrimPrefix(query, "?"); q != "" {
		raw += "?" + q
	}
	return urlsync.NewLocation(raw)
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(catalogPath)
}

func newClient() *fetcher.Client {
	return fetcher.NewClient(serverURL, &http.Client{Timeout: tui.RequestTimeout})
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	loc, err := pageURL(serverURL, query)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	model := tui.NewModel(cat, newClient(), loc)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), loc.String())
	return nil
}

func runList(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	set := urlsync.Decode(strings.TrimPrefix(query, "?"))

	f := fetcher.New(newClient())
	f.Fetch(ctx, set, nil)
	f.Wait()

	snap := f.Tracker().Snapshot()
	if snap.Err != nil {
		return snap.Err
	}
	for _, item := range snap.Items {
		total := 0
		if item.Reactions != nil {
			total = item.Reactions.Total()
		}
		fmt.Fprintf(out, "%4d  %-40s  %s  %s\n    %s\n",
			total, item.Title, item.Repo(), humanize.RelTime(item.CreatedAt, time.Now(), "ago", "from now"), item.HTMLURL)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
