package components

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/venturelabs/vlops/internal/fixtures"
	"github.com/venturelabs/vlops/internal/tui/themes"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

func TestRenderStatCards(t *testing.T) {
	p, err := fixtures.New(fixtures.Sample(testNow))
	if err != nil {
		t.Fatal(err)
	}
	stats, err := p.DashboardStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	cards := viewmodel.BuildStatCards(*stats, testNow)

	wide := RenderStatCards(cards, themes.Default, 120)
	narrow := RenderStatCards(cards, themes.Default, 60)

	for _, out := range []string{wide, narrow} {
		assert.Contains(t, out, "Total Perks")
		assert.Contains(t, out, "Failed Updates")
	}
	assert.Greater(t, lipgloss.Height(narrow), lipgloss.Height(wide))
}

func TestRenderActivity(t *testing.T) {
	items := viewmodel.BuildActivity(fixtures.Sample(testNow).Activity, testNow)

	out := RenderActivity(items, themes.Default, 80)
	assert.Contains(t, out, "AWS Activate perk updated")
	assert.Contains(t, out, "30m ago")

	assert.Contains(t, RenderActivity(nil, themes.Default, 80), "No recent activity")
}

func TestRenderComponents(t *testing.T) {
	items := viewmodel.BuildComponents(fixtures.Sample(testNow).Status)

	out := RenderComponents(items, themes.Default)
	assert.Contains(t, out, "scraper")
	assert.Contains(t, out, "operational")

	assert.Contains(t, RenderComponents(nil, themes.Default), "Status unavailable")
}
