package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode управляет интерактивным прогрессом batch-режима.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	}
	return uiModeOff, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// useTUI включает TUI явно или когда stdout — терминал.
func (m uiMode) useTUI() bool {
	if m == uiModeAuto {
		return isTerminal(os.Stdout)
	}
	return m == uiModeOn
}
