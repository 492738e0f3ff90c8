package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer is a cached glamour renderer instance
var markdownRenderer *glamour.TermRenderer

// cachedWidth stores the width used for the current renderer
var cachedWidth int

// cachedStyle stores the style used for the current renderer
var cachedStyle string

func initMarkdownRenderer(width int, style string) error {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	markdownRenderer = renderer
	cachedWidth = width
	cachedStyle = style
	return nil
}

// RenderMarkdownWithStyle renders markdown content using the given glamour
// style, falling back to the raw content on renderer failure.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	if markdownRenderer == nil || width != cachedWidth || style != cachedStyle {
		if err := initMarkdownRenderer(width, style); err != nil {
			return content
		}
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// RenderMarkdown renders markdown with the default dark style.
func RenderMarkdown(content string, width int) string {
	return RenderMarkdownWithStyle(content, width, "dark")
}
