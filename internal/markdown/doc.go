// Package markdown reads `<slug>.<locale>.md` documents from a filesystem,
// splits their YAML front matter from the Markdown body, and renders bodies
// to HTML. Two engines are available: the line-oriented site converter that
// matches the HTML the site has always published, and goldmark.
package markdown
