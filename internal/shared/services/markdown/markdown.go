// Package markdown renders conversation notes and strips markup from public form input.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	// ToHTMLSanitized renders a note body to HTML safe for the dashboards.
	ToHTMLSanitized(markdown string) (string, error)
	// PlainText removes every tag from untrusted text, keeping its content.
	PlainText(text string) string
}

type renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.TaskList,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &renderer{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

func (r *renderer) ToHTMLSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.ugc.Sanitize(buf.String()), nil
}

func (r *renderer) PlainText(text string) string {
	// StrictPolicy escapes what it keeps; stored text is unescaped and rendered by the client.
	return strings.TrimSpace(html.UnescapeString(r.strict.Sanitize(text)))
}
