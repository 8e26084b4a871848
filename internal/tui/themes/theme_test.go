package themes

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#cba6f7"), GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("default").Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
	assert.NotEqual(t, Default.Primary, GetTheme("light").Primary)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"catppuccin-mocha", "default", "light"}, Names())
}

func TestNew(t *testing.T) {
	theme := New(Palette{Primary: "#111111", OnPrimary: "#222222", Error: "#333333", Muted: "#444444"})

	assert.Equal(t, lipgloss.Color("#111111"), theme.Selected.GetBackground())
	assert.Equal(t, lipgloss.Color("#222222"), theme.Selected.GetForeground())
	assert.Equal(t, lipgloss.Color("#333333"), theme.StatusError.GetForeground())
	assert.Equal(t, lipgloss.Color("#444444"), theme.StatusPending.GetForeground())
	assert.True(t, theme.StatusPending.GetItalic())
}

func TestToneStyle(t *testing.T) {
	theme := Default

	tests := []struct {
		want lipgloss.TerminalColor
		tone listing.Tone
	}{
		{tone: listing.ToneSuccess, want: theme.StatusSuccess.GetForeground()},
		{tone: listing.ToneWarning, want: theme.StatusWarning.GetForeground()},
		{tone: listing.ToneError, want: theme.StatusError.GetForeground()},
		{tone: listing.ToneNeutral, want: theme.StatusPending.GetForeground()},
	}

	for _, tt := range tests {
		t.Run(tt.tone.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, theme.ToneStyle(tt.tone).GetForeground())
		})
	}
}

func TestScoreStyle(t *testing.T) {
	theme := Default

	assert.Equal(t, theme.StatusSuccess.GetForeground(), theme.ScoreStyle(model.ScoreHigh).GetForeground())
	assert.Equal(t, theme.StatusWarning.GetForeground(), theme.ScoreStyle(model.ScoreMedium).GetForeground())
	assert.Equal(t, theme.StatusError.GetForeground(), theme.ScoreStyle(model.ScoreLow).GetForeground())
	assert.Equal(t, theme.StatusPending.GetForeground(), theme.ScoreStyle(model.ScoreNone).GetForeground())
}

func TestStatus_KeepsText(t *testing.T) {
	assert.Contains(t, Default.Status("active"), "active")
	assert.Contains(t, Default.Status("brand-new"), "brand-new")
}
