// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the minimum terminal width required
	MinimumWidth = 40
	// MinimumHeight is the minimum terminal height required (header + footer + some space)
	MinimumHeight = 10
)

// HelpItem represents a single help entry
type HelpItem struct {
	Key         string
	Description string
}

// LayoutInfo contains all the information needed to render a layout
type LayoutInfo struct {
	Title       string
	Breadcrumbs []string
	Status      string
	Notice      string // Rendered toast, shown under the status line
	HelpItems   []HelpItem
}

// Dimensions represents the available space for content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks if the terminal has enough space to render properly
func ValidateSpace(width, height int) Dimensions {
	dims := Dimensions{Width: width, Height: height, Valid: true}
	switch {
	case width < MinimumWidth:
		dims.Valid = false
		dims.Error = fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth)
	case height < MinimumHeight:
		dims.Valid = false
		dims.Error = fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight)
	}
	return dims
}

// RenderHeader creates a header with title, breadcrumbs, status and notice
func RenderHeader(info LayoutInfo, width int) string {
	var header strings.Builder

	titleLine := TitleStyle.Render(info.Title)
	if len(info.Breadcrumbs) > 1 {
		titleLine += "  " + BreadcrumbStyle.Render(strings.Join(info.Breadcrumbs, BreadcrumbSeparator.String()))
	}
	header.WriteString(titleLine)

	if info.Status != "" {
		header.WriteString("\n")
		header.WriteString(StatsStyle.Render(info.Status))
	}
	if info.Notice != "" {
		header.WriteString("\n")
		header.WriteString(info.Notice)
	}

	header.WriteString("\n")
	header.WriteString(GetDivider(width))

	return header.String()
}

// RenderFooter creates a footer with help items
func RenderFooter(helpItems []HelpItem, width int) string {
	if len(helpItems) == 0 {
		return ""
	}

	helpTexts := make([]string, 0, len(helpItems))
	for _, item := range helpItems {
		helpTexts = append(helpTexts, fmt.Sprintf("[%s] %s",
			HelpKeyStyle.Render(item.Key),
			HelpTextStyle.Render(item.Description)))
	}

	return FooterStyle.Width(width).Render(strings.Join(helpTexts, " • "))
}

// RenderLayout combines header, content, and footer into a complete layout.
// Returns an error view if the terminal is too small.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(dims.Error, width, height)
	}

	header := RenderHeader(info, width)
	footer := RenderFooter(info.HelpItems, width)

	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	// MaxHeight enforces the ceiling, Height sets the box size
	styledContent := lipgloss.NewStyle().
		Width(width).
		MaxHeight(contentHeight).
		Height(contentHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, styledContent, footer)
}

// GetContentArea calculates the available width and height for content
func GetContentArea(info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	headerHeight := lipgloss.Height(RenderHeader(info, totalWidth))
	footerHeight := 0
	if len(info.HelpItems) > 0 {
		footerHeight = lipgloss.Height(RenderFooter(info.HelpItems, totalWidth))
	}

	contentHeight := totalHeight - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	return Dimensions{Width: totalWidth, Height: contentHeight, Valid: true}
}

func renderSpaceError(message string, width, height int) string {
	errorStyle := lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true).
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height)

	lines := []string{
		"⚠ Terminal Too Small ⚠",
		"",
		message,
		"",
		fmt.Sprintf("Current: %dx%d", width, height),
		fmt.Sprintf("Minimum: %dx%d", MinimumWidth, MinimumHeight),
		"",
		"Please resize your terminal",
	}

	return errorStyle.Render(strings.Join(lines, "\n"))
}
