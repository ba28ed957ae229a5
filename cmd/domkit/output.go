package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type styles struct {
	index lipgloss.Style
	tag   lipgloss.Style
	attr  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return styles{index: plain, tag: plain, attr: plain, muted: plain}
	}
	return styles{
		index: lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
		tag:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		attr:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		muted: lipgloss.NewStyle().Faint(true),
	}
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
