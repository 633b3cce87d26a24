package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/unotable/consts"
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/ui"
	"github.com/stretchr/testify/require"
)

func console(input string) (*ui.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return ui.NewConsole(strings.NewReader(input), out, 0), out
}

func TestPromptCardSelection(t *testing.T) {
	redOne := card.NewNumberCard(color.Red, 1)
	wild := card.NewWildCard()

	t.Run("selects_by_letter_after_a_bad_label", func(t *testing.T) {
		c, out := console("z\nb\n")
		selected, drawn, err := c.PromptCardSelection([]card.Card{redOne, wild})
		require.NoError(t, err)
		require.False(t, drawn)
		require.Equal(t, wild, selected)
		require.Contains(t, out.String(), "No card assigned to 'Z'")
	})

	t.Run("draw_label_draws", func(t *testing.T) {
		c, _ := console("0\n")
		_, drawn, err := c.PromptCardSelection([]card.Card{redOne})
		require.NoError(t, err)
		require.True(t, drawn)
	})

	t.Run("closed_input_fails", func(t *testing.T) {
		c, _ := console("")
		_, _, err := c.PromptCardSelection([]card.Card{redOne})
		require.Error(t, err)
	})
}

func TestPromptColor(t *testing.T) {
	c, out := console("purple\nWild\nGreen\n")
	chosen, err := c.PromptColor()
	require.NoError(t, err)
	require.Equal(t, color.Green, chosen)
	require.Contains(t, out.String(), "Unknown color 'purple'")
	require.Contains(t, out.String(), "Unknown color 'wild'")
}

func TestPromptYesNo(t *testing.T) {
	c, _ := console("maybe\nY\nno")
	yes, err := c.PromptYesNo("Challenge?")
	require.NoError(t, err)
	require.True(t, yes)

	yes, err = c.PromptYesNo("Again?")
	require.NoError(t, err)
	require.False(t, yes)

	_, err = c.PromptYesNo("Once more?")
	require.True(t, strings.Contains(err.Error(), consts.ErrorsInputInvalid.Error()))
}

func TestPrintlns(t *testing.T) {
	c, out := console("")
	c.Printlns([]string{"Your turn", "Hand: R1"})
	require.Equal(t, "Your turn\nHand: R1\n", out.String())
}
