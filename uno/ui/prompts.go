package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/unotable/consts"
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
)

// DrawLabel is the answer that draws instead of playing.
const DrawLabel = "0"

// PromptString keeps asking until a non-empty line arrives. Input errors end the prompt.
func (c *Console) PromptString(message string) (string, error) {
	for {
		c.Println(message)
		input, err := c.readLine()
		if err != nil {
			return "", fmt.Errorf("read input: %w", consts.ErrorsInputInvalid)
		}
		if input == "" {
			c.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (c *Console) promptLowercaseString(message string) (string, error) {
	input, err := c.PromptString(message)
	return strings.ToLower(input), err
}

func (c *Console) promptUppercaseString(message string) (string, error) {
	input, err := c.PromptString(message)
	return strings.ToUpper(input), err
}

// PromptCardSelection offers every card under a letter plus DrawLabel for drawing.
// drawn is true when the player chose to draw.
func (c *Console) PromptCardSelection(cards []card.Card) (selected card.Card, drawn bool, err error) {
	runeSequence := runeSequence{}
	labels := make([]string, 0, len(cards))
	cardOptions := make(map[string]card.Card)
	for _, option := range cards {
		label := string(runeSequence.next())
		labels = append(labels, label)
		cardOptions[label] = option
	}

	cardSelectionLines := []string{"Select a card to play:"}
	for _, label := range labels {
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", cardOptions[label], label))
	}
	cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("draw a card (enter %s)", DrawLabel))
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel, err := c.promptUppercaseString(cardSelectionMessage)
		if err != nil {
			return card.Card{}, false, err
		}
		if selectedLabel == DrawLabel {
			return card.Card{}, true, nil
		}
		selectedCard, found := cardOptions[selectedLabel]
		if !found {
			c.Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedCard, false, nil
	}
}

func (c *Console) PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Paint(color.Red.String()),
		color.Blue.Paint(color.Blue.String()),
		color.Green.Paint(color.Green.String()),
		color.Yellow.Paint(color.Yellow.String()),
	)
	for {
		colorName, err := c.promptLowercaseString(colorMessage)
		if err != nil {
			return "", err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			c.Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}

// PromptYesNo asks a y/n question.
func (c *Console) PromptYesNo(message string) (bool, error) {
	for {
		answer, err := c.promptLowercaseString(message + " (y/n)")
		if err != nil {
			return false, err
		}
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Printfln("Please answer 'y' or 'n'")
	}
}

// PromptYesNoWithin is PromptYesNo that also reports whether the answer came within limit.
func (c *Console) PromptYesNoWithin(message string, limit time.Duration) (yes bool, inTime bool, err error) {
	started := time.Now()
	yes, err = c.PromptYesNo(message)
	return yes, time.Since(started) <= limit, err
}
