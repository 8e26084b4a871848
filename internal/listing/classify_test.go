package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status string
		want   Tone
	}{
		{status: "active", want: ToneSuccess},
		{status: "Active", want: ToneSuccess},
		{status: "APPROVED", want: ToneSuccess},
		{status: "success", want: ToneSuccess},
		{status: "pending", want: ToneWarning},
		{status: "Analyzing", want: ToneWarning},
		{status: "error", want: ToneError},
		{status: "failed", want: ToneError},
		{status: "rejected", want: ToneError},
		{status: "expired", want: ToneNeutral},
		{status: "not_started", want: ToneNeutral},
		{status: "", want: ToneNeutral},
		{status: "  active ", want: ToneSuccess},
		{status: "something-new", want: ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("active"), Classify("Active"))
	assert.Equal(t, Classify("ACTIVE"), Classify("active"))
	assert.Equal(t, ToneSuccess, Classify("Active"))
}

func TestTone_String(t *testing.T) {
	assert.Equal(t, "success", ToneSuccess.String())
	assert.Equal(t, "warning", ToneWarning.String())
	assert.Equal(t, "error", ToneError.String())
	assert.Equal(t, "neutral", ToneNeutral.String())
	assert.Equal(t, "neutral", Tone(42).String())
}

func TestComponentTone(t *testing.T) {
	tests := []struct {
		state string
		want  Tone
	}{
		{"operational", ToneSuccess},
		{"Operational", ToneSuccess},
		{"maintenance", ToneWarning},
		{"error", ToneError},
		{"active", ToneNeutral},
		{"", ToneNeutral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComponentTone(tt.state), tt.state)
	}
}
