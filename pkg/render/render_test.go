package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	old := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = old })
}

func TestRenderStripsTokensWithoutColor(t *testing.T) {
	withColor(t, false)

	tests := []struct {
		template string
		expected string
	}{
		{"{blue}{bold}Foo{-}: {white}{italic}bar{-}", "Foo: bar"},
		{"plain text", "plain text"},
		{"{bold}everything bold", "everything bold"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Render(tt.template))
	}
}

func TestRenderEmitsANSI(t *testing.T) {
	withColor(t, true)

	// The exact escape sequences belong to the color library; build the
	// expectation through it rather than pinning them here.
	want := color.New(color.FgBlue, color.Bold).Sprint("Foo") + ": bar"
	assert.Equal(t, want, Render("{blue}{bold}Foo{-}: bar"))
}

func TestRenderResetClearsStyles(t *testing.T) {
	withColor(t, true)

	got := Render("{red}hot{-}cold")
	assert.Contains(t, got, color.New(color.FgRed).Sprint("hot"))
	assert.True(t, strings.HasSuffix(got, "cold"))
	assert.NotContains(t, got, "\x1b[31mcold")
}

func TestRenderUnknownTokenPassesThrough(t *testing.T) {
	withColor(t, false)

	assert.Equal(t, "{shiny}text", Render("{shiny}text"))
	assert.Equal(t, "dangling {", Render("dangling {"))
}
