package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func parseMode(flag, value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

func readUIMode(value string) (uiMode, error) { return parseMode("ui", value) }

func readColorMode(value string) (uiMode, error) { return parseMode("color", value) }

func shouldUseTUI(mode uiMode, out *os.File) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(out)
	}
}

// applyColorMode makes fatih/color and lipgloss agree with --color. In auto
// mode both keep their own terminal detection.
func applyColorMode(mode uiMode) {
	switch mode {
	case uiModeOn:
		color.NoColor = false
		lipgloss.SetColorProfile(termenv.TrueColor)
	case uiModeOff:
		color.NoColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
