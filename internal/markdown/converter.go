package markdown

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

var (
	headingPattern  = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)
	bulletPattern   = regexp.MustCompile(`^-\s+(.+)$`)
	orderedPattern  = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	quotePattern    = regexp.MustCompile(`^>\s?(.*)$`)
	blockTagPattern = regexp.MustCompile(`(?i)^</?(p|ul|ol|li|h[1-6]|blockquote|pre|div|table|thead|tbody|tr|th|td|hr|section|figure|figcaption|iframe|video)(\s|>|/)`)

	codeSpanPattern = regexp.MustCompile("`([^`\n]+)`")
	linkPattern     = regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\s]+)\)`)
	boldPattern     = regexp.MustCompile(`\*\*([^*\n]+?)\*\*`)
	italicPattern   = regexp.MustCompile(`\*([^*\n]+)\*`)
)

const fenceMarker = "```"

// SiteConverter renders the constrained Markdown subset used by the site's
// content files. It is line oriented and never fails: unsupported syntax is
// emitted as paragraph text. Lines that already start with a block-level
// HTML tag are passed through, so converting its own output is a no-op.
type SiteConverter struct{}

var _ interfaces.MarkdownParser = (*SiteConverter)(nil)

// NewSiteConverter constructs the site converter.
func NewSiteConverter() *SiteConverter {
	return &SiteConverter{}
}

// Parse satisfies interfaces.MarkdownParser.
func (c *SiteConverter) Parse(markdown []byte) ([]byte, error) {
	return []byte(Convert(string(markdown))), nil
}

// ParseWithOptions satisfies interfaces.MarkdownParser. The construct set is
// fixed so options are ignored.
func (c *SiteConverter) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return c.Parse(markdown)
}

// Convert renders markdown into HTML, one block element per output line.
func Convert(source string) string {
	r := &lineRenderer{}
	for _, line := range strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n") {
		r.line(line)
	}
	r.finish()
	return strings.Join(r.out, "\n")
}

type lineRenderer struct {
	out []string

	paragraph []string
	quote     []string

	listTag string
	items   []string

	fence bool
	code  []string

	// raw is set while copying a pre-rendered <pre> block verbatim.
	raw bool
}

func (r *lineRenderer) line(line string) {
	if r.fence {
		if strings.HasPrefix(strings.TrimSpace(line), fenceMarker) {
			r.closeFence()
			return
		}
		r.code = append(r.code, line)
		return
	}

	if r.raw {
		r.out = append(r.out, line)
		if strings.Contains(line, "</pre>") {
			r.raw = false
		}
		return
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		// list items separated by blank lines still belong to the same list
		r.flushParagraph()
		r.flushQuote()
		return
	}

	if strings.HasPrefix(trimmed, fenceMarker) {
		r.flushAll()
		r.fence = true
		r.code = nil
		return
	}

	if m := bulletPattern.FindStringSubmatch(trimmed); m != nil {
		r.listItem("ul", m[1])
		return
	}
	if m := orderedPattern.FindStringSubmatch(trimmed); m != nil {
		r.listItem("ol", m[1])
		return
	}
	r.flushList()

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		r.flushParagraph()
		r.flushQuote()
		level := strconv.Itoa(len(m[1]))
		r.out = append(r.out, "<h"+level+">"+renderInline(strings.TrimSpace(m[2]))+"</h"+level+">")
		return
	}

	if m := quotePattern.FindStringSubmatch(trimmed); m != nil {
		r.flushParagraph()
		if text := strings.TrimSpace(m[1]); text != "" {
			r.quote = append(r.quote, text)
		}
		return
	}

	if blockTagPattern.MatchString(trimmed) {
		r.flushParagraph()
		r.flushQuote()
		r.out = append(r.out, trimmed)
		if strings.HasPrefix(strings.ToLower(trimmed), "<pre") && !strings.Contains(trimmed, "</pre>") {
			r.raw = true
		}
		return
	}

	r.flushQuote()
	r.paragraph = append(r.paragraph, trimmed)
}

func (r *lineRenderer) listItem(tag, text string) {
	r.flushParagraph()
	r.flushQuote()
	if r.listTag != tag {
		r.flushList()
		r.listTag = tag
	}
	r.items = append(r.items, "<li>"+renderInline(strings.TrimSpace(text))+"</li>")
}

func (r *lineRenderer) flushParagraph() {
	if len(r.paragraph) == 0 {
		return
	}
	r.out = append(r.out, "<p>"+renderInline(strings.Join(r.paragraph, " "))+"</p>")
	r.paragraph = nil
}

func (r *lineRenderer) flushQuote() {
	if len(r.quote) == 0 {
		return
	}
	r.out = append(r.out, "<blockquote>"+renderInline(strings.Join(r.quote, " "))+"</blockquote>")
	r.quote = nil
}

func (r *lineRenderer) flushList() {
	if r.listTag == "" {
		return
	}
	r.out = append(r.out, "<"+r.listTag+">")
	r.out = append(r.out, r.items...)
	r.out = append(r.out, "</"+r.listTag+">")
	r.listTag = ""
	r.items = nil
}

func (r *lineRenderer) closeFence() {
	r.out = append(r.out, "<pre><code>"+html.EscapeString(strings.Join(r.code, "\n"))+"</code></pre>")
	r.fence = false
	r.code = nil
}

func (r *lineRenderer) flushAll() {
	r.flushParagraph()
	r.flushQuote()
	r.flushList()
}

func (r *lineRenderer) finish() {
	if r.fence {
		r.closeFence()
	}
	r.flushAll()
}

// renderInline applies code spans first so their content is escaped and
// shielded from the emphasis and link rules. Link targets are shielded the
// same way; link text still gets emphasis.
func renderInline(text string) string {
	var spans []string
	shield := func(fragment string) string {
		spans = append(spans, fragment)
		return spanToken(len(spans) - 1)
	}
	text = codeSpanPattern.ReplaceAllStringFunc(text, func(match string) string {
		return shield("<code>" + html.EscapeString(match[1:len(match)-1]) + "</code>")
	})

	text = linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return `<a href="` + shield(parts[2]) + `">` + parts[1] + "</a>"
	})
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")

	for i, span := range spans {
		text = strings.Replace(text, spanToken(i), span, 1)
	}
	return text
}

func spanToken(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}
