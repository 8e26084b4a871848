package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/venturelabs/vlops/internal/api"
	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/fixtures"
	"github.com/venturelabs/vlops/internal/service"
)

// provider returns the data source selected by configuration: the fixtures
// file or the built-in sample in demo mode, the HTTP API otherwise.
func (a *app) provider() (service.Provider, error) {
	cfg := a.cfg

	switch {
	case cfg.FixturesPath != "":
		slog.Debug("Serving fixtures", "path", cfg.FixturesPath)
		return fixtures.Load(cfg.FixturesPath)
	case cfg.Demo:
		slog.Debug("Serving built-in demo data")
		return fixtures.New(fixtures.Sample(a.now()))
	}

	client, err := api.New(api.Config{
		BaseURL:   cfg.API.URL,
		Timeout:   cfg.API.Timeout,
		Retry:     cfg.API.RetryOptions(),
		UserAgent: "vlops/" + version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// parseID parses a record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", common.ErrInvalidInput, arg)
	}
	return id, nil
}

// parseIDs parses every argument as a record id.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// withUnknown appends the statuses in present that known does not list, so
// that records with unexpected statuses still show up in the counts.
func withUnknown(known, present []string) []string {
	out := slices.Clone(known)
	for _, s := range present {
		if !slices.Contains(known, s) {
			out = append(out, s)
		}
	}
	return out
}

// orDash renders an empty value as a dash.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
