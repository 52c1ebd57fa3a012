package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/session"
)

func TestPrompter_PromptText(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(" coffee10 \r\n\n"), &out)

	answer, ok, err := p.PromptText(context.Background(), "Discount", "Code?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, " coffee10 ", answer)
	assert.Equal(t, "[Discount] Code? ", out.String())

	_, ok, err = p.PromptText(context.Background(), "Discount", "Code?")
	require.NoError(t, err)
	assert.False(t, ok, "empty line dismisses")

	_, _, err = p.PromptText(context.Background(), "Discount", "Code?")
	assert.True(t, errors.Is(err, io.EOF))
}

func TestPrompter_PromptYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\nyes\n", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(tt.input), &out)

		got, err := p.PromptYesNo(context.Background(), "Confirm", "Proceed?")

		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestPrompter_PromptYesNoReasks(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("perhaps\nn\n"), &out)

	_, err := p.PromptYesNo(context.Background(), "Confirm", "Proceed?")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Please answer y or n")
}

func TestPrompter_ReadLineWithoutTrailingNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("quit"), io.Discard)

	line, err := p.ReadLine(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "quit", line)
}

func TestPrompter_ReadLineHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPrompter(strings.NewReader("menu\n"), io.Discard)

	_, err := p.ReadLine(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_Notify(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	err := p.Notify(context.Background(), session.Notice{Level: session.LevelWarning, Title: "Invalid", Message: "Invalid discount code."})

	require.NoError(t, err)
	assert.Equal(t, "(!) Invalid: Invalid discount code.\n", out.String())
}
