package htmldoc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/tsawler/bilingual/classify"
)

// blockSelector matches elements that make a meaningful container a wrapper
// rather than a leaf fragment.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, div, section, article, blockquote, figure"

// Extract parses markup and collects the title, embedded stylesheets and
// candidate fragments. It never fails; a parse error is recorded in
// Document.Err and leaves the document empty.
func Extract(name, markup string) *Document {
	d := &Document{Name: name}

	root, err := html.Parse(strings.NewReader(expandSelfClosing(markup)))
	if err != nil {
		d.Err = fmt.Errorf("parsing %s: %w", name, err)
		return d
	}

	doc := goquery.NewDocumentFromNode(root)

	d.Title = strings.TrimSpace(doc.Find("title").First().Text())
	d.Styles = collectStyles(doc, name)

	body := findElement(root, "body")
	if body == nil {
		body = root
	}

	w := &walker{
		doc:     doc,
		body:    body,
		wrapper: detectTopLevelWrapper(body),
	}
	w.walk(body, false)
	d.Fragments = w.fragments

	return d
}

// collectStyles concatenates the text of every <style> element in document
// order, each block preceded by a comment naming the source document.
func collectStyles(doc *goquery.Document, name string) string {
	var blocks []string
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		css := strings.TrimSpace(s.Text())
		if css == "" {
			return
		}
		blocks = append(blocks, fmt.Sprintf("/* Styles from %s */\n%s", name, css))
	})
	return strings.Join(blocks, "\n")
}

// walker accumulates candidate fragments during a depth-first traversal.
type walker struct {
	doc        *goquery.Document
	body       *html.Node
	wrapper    *html.Node
	containers []classify.Container // root first
	meaningful int                  // depth of meaningful wrappers around the current node
	fragments  []RawFragment
}

// walk visits the children of n. When n is a narrative wrapper, runs of text
// and inline elements directly inside it become fragments of their own.
func (w *walker) walk(n *html.Node, narrative bool) {
	var run []*html.Node
	flush := func() {
		if len(run) > 0 {
			w.emitRun(n, run)
			run = nil
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if narrative && (c.Type == html.TextNode || (c.Type == html.ElementNode && isInline(localName(c.Data)))) {
			run = append(run, c)
			continue
		}
		if c.Type != html.ElementNode {
			continue
		}
		flush()

		tag := localName(c.Data)
		if shouldSkipElement(tag) {
			continue
		}

		meaningful := isBlockContainer(tag) && classify.IsMeaningfulClass(getAttr(c, "class"))
		inNarrative := meaningful || (w.meaningful > 0 && isBlockContainer(tag))

		switch {
		case classify.IsHeadingTag(tag), tag == "p":
			w.emit(c, tag)
			continue
		case inNarrative && !w.hasBlockDescendant(c):
			w.emit(c, tag)
			continue
		}

		w.containers = append(w.containers, classify.Container{
			Tag:      tag,
			Class:    getAttr(c, "class"),
			ID:       getAttr(c, "id"),
			TopLevel: w.isTopLevel(c),
		})
		if meaningful {
			w.meaningful++
		}
		w.walk(c, inNarrative)
		if meaningful {
			w.meaningful--
		}
		w.containers = w.containers[:len(w.containers)-1]
	}
	flush()
}

func (w *walker) emit(n *html.Node, tag string) {
	w.add(tag, getTextContent(n), n, w.containers)
}

// emitRun adds the text of nodes, all children of wrapper, as one fragment
// carrying the wrapper's tag and attributes. The wrapper is the innermost
// entry of w.containers and is not listed as its own container.
func (w *walker) emitRun(wrapper *html.Node, nodes []*html.Node) {
	var sb strings.Builder
	for _, n := range nodes {
		getTextContentRecursive(n, &sb)
	}
	w.add(localName(wrapper.Data), sb.String(), wrapper, w.containers[:len(w.containers)-1])
}

// add records a fragment for element n. containers is root first.
func (w *walker) add(tag, text string, n *html.Node, containers []classify.Container) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	nearest := make([]classify.Container, len(containers))
	for i, ct := range containers {
		nearest[len(containers)-1-i] = ct
	}

	w.fragments = append(w.fragments, RawFragment{
		Tag:        tag,
		Text:       text,
		Class:      getAttr(n, "class"),
		ID:         getAttr(n, "id"),
		Style:      getAttr(n, "style"),
		Containers: nearest,
	})
}

func (w *walker) hasBlockDescendant(n *html.Node) bool {
	return w.doc.FindNodes(n).Find(blockSelector).Length() > 0
}

// isTopLevel reports whether n is a direct child of body or of the single
// top-level wrapper.
func (w *walker) isTopLevel(n *html.Node) bool {
	return n.Parent != nil && (n.Parent == w.body || (w.wrapper != nil && n.Parent == w.wrapper))
}

// detectTopLevelWrapper finds a single structural wrapper element if one
// exists, as in <body><div id="wrapper">...</div></body>. Only div and main
// qualify.
func detectTopLevelWrapper(body *html.Node) *html.Node {
	var structural []*html.Node

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch localName(c.Data) {
		case "div", "main", "section", "article":
			structural = append(structural, c)
		case "script", "style", "noscript", "template":
		default:
			return nil
		}
	}

	// a lone section or article is a sectioning root, and its header is
	// the section's own header rather than page chrome
	if len(structural) == 1 && !isSectioning(localName(structural[0].Data)) {
		return structural[0]
	}
	return nil
}

func isSectioning(tag string) bool {
	return tag == "section" || tag == "article"
}

// shouldSkipElement reports elements whose subtree never holds readable text.
func shouldSkipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "math", "head":
		return true
	}
	return false
}

// isBlockContainer reports the tags that qualify as fragments when their
// class marks them as meaningful.
func isBlockContainer(tag string) bool {
	switch tag {
	case "div", "section", "article", "blockquote", "figure":
		return true
	}
	return false
}

// isInline reports phrasing elements whose text runs on with the
// surrounding text.
func isInline(tag string) bool {
	switch tag {
	case "a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "dfn", "em",
		"i", "kbd", "mark", "q", "s", "samp", "small", "span", "strong",
		"sub", "sup", "time", "u", "var", "wbr":
		return true
	}
	return false
}

// localName strips a namespace prefix such as "xhtml:".
func localName(tag string) string {
	if i := strings.LastIndexByte(tag, ':'); i >= 0 {
		return strings.ToLower(tag[i+1:])
	}
	return strings.ToLower(tag)
}

func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && localName(n.Data) == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

// getTextContent returns the text of a node and its descendants. <br>
// becomes a newline; script and style content is dropped.
func getTextContent(n *html.Node) string {
	var sb strings.Builder
	getTextContentRecursive(n, &sb)
	return sb.String()
}

func getTextContentRecursive(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		tag := localName(n.Data)
		if shouldSkipElement(tag) {
			return
		}
		if tag == "br" {
			sb.WriteString("\n")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, sb)
	}
}

// selfClosing matches XHTML self-closing forms of elements that the HTML
// parser would otherwise treat as open, e.g. <title/> swallowing the rest of
// the document.
var selfClosing = regexp.MustCompile(`(?i)<(title|script|style|div|p|span|a|i|b|em|strong|section|textarea|iframe|h[1-6])(\s[^<>]*?)?\s*/>`)

func expandSelfClosing(markup string) string {
	return selfClosing.ReplaceAllString(markup, "<$1$2></$1>")
}
