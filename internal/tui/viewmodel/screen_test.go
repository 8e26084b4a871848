package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_String(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		screen Screen
	}{
		{name: "overview", screen: ScreenOverview, want: "Overview"},
		{name: "perks", screen: ScreenPerks, want: "Perks"},
		{name: "applications", screen: ScreenApplications, want: "Applications"},
		{name: "detail", screen: ScreenDetail, want: "Application"},
		{name: "unknown", screen: Screen(99), want: "Unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.screen.String())
		})
	}
}

func TestScreen_Navigation(t *testing.T) {
	tests := []struct {
		name   string
		screen Screen
		next   Screen
		prev   Screen
	}{
		{name: "overview", screen: ScreenOverview, next: ScreenPerks, prev: ScreenApplications},
		{name: "perks", screen: ScreenPerks, next: ScreenApplications, prev: ScreenOverview},
		{name: "applications", screen: ScreenApplications, next: ScreenOverview, prev: ScreenPerks},
		{name: "detail behaves as applications", screen: ScreenDetail, next: ScreenOverview, prev: ScreenPerks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.screen.Next())
			assert.Equal(t, tt.prev, tt.screen.Prev())
		})
	}
}

func TestAppState_String(t *testing.T) {
	assert.Equal(t, "Loading", StateLoading.String())
	assert.Equal(t, "Ready", StateReady.String())
	assert.Equal(t, "Error", StateError.String())
	assert.Equal(t, "Unknown(7)", AppState(7).String())
}
