package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/bilingual/classify"
)

func texts(d *Document) []string {
	out := make([]string, 0, len(d.Fragments))
	for _, f := range d.Fragments {
		out = append(out, f.Text)
	}
	return out
}

func TestExtractBasic(t *testing.T) {
	markup := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <title> Chapter 1 </title>
  <style type="text/css">p { text-indent: 1em; }</style>
  <style></style>
</head>
<body>
<h1 class="chapter-title" id="c1">Chapter One</h1>
<p style="font-style: italic">Hello <em>world</em>.</p>
<p>   </p>
<p>Line one<br/>Line two</p>
<ul><li>List items are not fragments</li></ul>
<script>var x = "<p>not text</p>";</script>
<style>h1 { color: red; }</style>
</body>
</html>`

	d := Extract("OEBPS/ch1.xhtml", markup)
	require.NoError(t, d.Err)
	assert.Equal(t, "OEBPS/ch1.xhtml", d.Name)
	assert.Equal(t, "Chapter 1", d.Title)
	assert.Equal(t,
		"/* Styles from OEBPS/ch1.xhtml */\np { text-indent: 1em; }\n/* Styles from OEBPS/ch1.xhtml */\nh1 { color: red; }",
		d.Styles)

	assert.Equal(t, []string{"Chapter One", "Hello world.", "Line one\nLine two"}, texts(d))

	h := d.Fragments[0]
	assert.Equal(t, "h1", h.Tag)
	assert.Equal(t, "chapter-title", h.Class)
	assert.Equal(t, "c1", h.ID)
	assert.Empty(t, h.Containers)

	p := d.Fragments[1]
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, "font-style: italic", p.Style)
}

func TestExtractMeaningfulContainers(t *testing.T) {
	markup := `<html><body>
<div class="letter">Dear Watson, come at once.</div>
<div class="letter-body"><p>First paragraph.</p><p>Second paragraph.</p></div>
<div class="plain">Loose text in a plain div.</div>
<blockquote class="poem">Roses are red</blockquote>
<section class="verse"><div>nested block</div></section>
</body></html>`

	d := Extract("ch.xhtml", markup)
	assert.Equal(t, []string{
		"Dear Watson, come at once.",
		"First paragraph.",
		"Second paragraph.",
		"Roses are red",
		"nested block",
	}, texts(d))

	assert.Equal(t, "div", d.Fragments[0].Tag)
	assert.Equal(t, "letter", d.Fragments[0].Class)
	assert.Equal(t, "blockquote", d.Fragments[3].Tag)

	// paragraphs inside the wrapper record it as their container
	require.Len(t, d.Fragments[1].Containers, 1)
	assert.Equal(t, "letter-body", d.Fragments[1].Containers[0].Class)
}

func TestExtractTextRunsInMeaningfulWrapper(t *testing.T) {
	markup := `<html><body>
<div class="letter">Dear <em>John</em>,
  <p>I write in haste.</p>
  Yours ever,<br/>Mary
  <p>P.S. Burn this.</p>
</div>
<div class="plain">Stray <b>text</b><p>Plain paragraph.</p></div>
</body></html>`

	d := Extract("ch.xhtml", markup)
	assert.Equal(t, []string{
		"Dear John,",
		"I write in haste.",
		"Yours ever,\nMary",
		"P.S. Burn this.",
		"Plain paragraph.",
	}, texts(d))

	greeting := d.Fragments[0]
	assert.Equal(t, "div", greeting.Tag)
	assert.Equal(t, "letter", greeting.Class)
	assert.Empty(t, greeting.Containers)

	require.Len(t, d.Fragments[1].Containers, 1)
	assert.Equal(t, "letter", d.Fragments[1].Containers[0].Class)
}

func TestExtractContainersNearestFirst(t *testing.T) {
	markup := `<html><body>
<header><h1>Site</h1></header>
<main><section id="s1"><header><h2>Part</h2></header><p>Body text.</p></section></main>
<nav class="toc"><p>Contents</p></nav>
</body></html>`

	d := Extract("ch.xhtml", markup)
	require.Len(t, d.Fragments, 4)

	site := d.Fragments[0]
	require.Len(t, site.Containers, 1)
	assert.Equal(t, "header", site.Containers[0].Tag)
	assert.True(t, site.Containers[0].TopLevel)

	part := d.Fragments[1]
	require.Len(t, part.Containers, 3)
	assert.Equal(t, "header", part.Containers[0].Tag)
	assert.False(t, part.Containers[0].TopLevel)
	assert.Equal(t, "section", part.Containers[1].Tag)
	assert.Equal(t, "s1", part.Containers[1].ID)
	assert.Equal(t, "main", part.Containers[2].Tag)
	assert.True(t, part.Containers[2].TopLevel)

	nav := d.Fragments[3]
	assert.Equal(t, "nav", nav.Containers[0].Tag)
	assert.Equal(t, "toc", nav.Containers[0].Class)
}

func TestExtractSingleWrapperIsTopLevel(t *testing.T) {
	markup := `<html><body><div id="wrapper"><footer><p>Footer text here.</p></footer></div></body></html>`

	d := Extract("ch.xhtml", markup)
	require.Len(t, d.Fragments, 1)
	c := d.Fragments[0].Containers
	require.Len(t, c, 2)
	assert.Equal(t, "footer", c[0].Tag)
	assert.True(t, c[0].TopLevel)
}

func TestExtractSectionHeaderKeepsHeading(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"single section", `<section><header><h1>The Storm</h1></header><p>Rain fell all night.</p></section>`},
		{"two sections", `<section><header><h1>The Storm</h1></header><p>Rain fell all night.</p></section><section><p>Morning came.</p></section>`},
		{"section in wrapper", `<div id="wrapper"><section><header><h1>The Storm</h1></header><p>Rain fell all night.</p></section></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Extract("ch.xhtml", "<html><body>"+tt.body+"</body></html>")
			require.NotEmpty(t, d.Fragments)

			heading := d.Fragments[0]
			assert.Equal(t, "The Storm", heading.Text)
			got := classify.Classify(heading.Candidate())
			assert.True(t, got.Keep, "rejected as %s (%q)", got.Reason, got.Keyword)
		})
	}
}

func TestExtractWrapperHeaderIsChrome(t *testing.T) {
	d := Extract("ch.xhtml", `<html><body><div id="page"><header><h1>Site Name</h1></header><p>Body text.</p></div></body></html>`)
	require.Len(t, d.Fragments, 2)
	assert.False(t, classify.Classify(d.Fragments[0].Candidate()).Keep)
	assert.True(t, classify.Classify(d.Fragments[1].Candidate()).Keep)
}

func TestExtractSelfClosingTitle(t *testing.T) {
	markup := `<html xmlns="http://www.w3.org/1999/xhtml"><head><title/></head>
<body><div class="x"/><p>Still parsed.</p></body></html>`

	d := Extract("ch.xhtml", markup)
	assert.Equal(t, "", d.Title)
	assert.Equal(t, []string{"Still parsed."}, texts(d))
}

func TestExtractWithoutBody(t *testing.T) {
	d := Extract("frag.html", `<h2>Heading</h2><p>Text.</p>`)
	assert.Equal(t, []string{"Heading", "Text."}, texts(d))

	empty := Extract("empty.html", "")
	assert.NoError(t, empty.Err)
	assert.Empty(t, empty.Fragments)
	assert.Empty(t, empty.Title)
}

func TestRawFragmentCandidate(t *testing.T) {
	f := RawFragment{Tag: "p", Text: "x", Class: "c", ID: "i", Style: "s"}
	c := f.Candidate()
	assert.Equal(t, "p", c.Tag)
	assert.Equal(t, "c", c.Class)
	assert.Equal(t, "i", c.ID)
	assert.Equal(t, "x", c.Text)
}

func TestExpandSelfClosing(t *testing.T) {
	assert.Equal(t, `<title></title>`, expandSelfClosing(`<title/>`))
	assert.Equal(t, `<a id="p1"></a>`, expandSelfClosing(`<a id="p1" />`))
	assert.Equal(t, `<br/><img src="a.png"/>`, expandSelfClosing(`<br/><img src="a.png"/>`))
}
