package render

import (
	"bytes"
	"strconv"

	"github.com/syntax-framework/statics/manifest"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, value string) html.Attribute {
	return html.Attribute{Key: key, Val: value}
}

// appendAll appends children to parent and returns parent
func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, child := range children {
		parent.AppendChild(child)
	}
	return parent
}

func cell(a atom.Atom, children ...*html.Node) *html.Node {
	return appendAll(element(a), children...)
}

// renderHtml a human-readable page listing every record of the flat index
func renderHtml(m *manifest.Manifest, opts Options) ([]byte, error) {
	title := "Static files"

	thead := appendAll(element(atom.Thead), appendAll(element(atom.Tr),
		cell(atom.Th, text("Reference")),
		cell(atom.Th, text("Public path")),
		cell(atom.Th, text("MIME")),
		cell(atom.Th, text("Size")),
		cell(atom.Th, text("Original location")),
	))

	tbody := element(atom.Tbody)
	for _, record := range m.Index {
		tbody.AppendChild(appendAll(element(atom.Tr),
			cell(atom.Td, cell(atom.Code, text(record.Ref().String()))),
			cell(atom.Td, appendAll(element(atom.A, attr("href", record.Name)), text(record.Name))),
			cell(atom.Td, text(record.Mime)),
			cell(atom.Td, text(strconv.FormatInt(record.Size, 10))),
			cell(atom.Td, text(record.FileName)),
		))
	}

	doc := appendAll(&html.Node{Type: html.DocumentNode},
		&html.Node{Type: html.DoctypeNode, Data: "html"},
		appendAll(element(atom.Html, attr("lang", "en")),
			appendAll(element(atom.Head),
				element(atom.Meta, attr("charset", "utf-8")),
				element(atom.Meta, attr("name", "generator"), attr("content", opts.Generator)),
				cell(atom.Title, text(title)),
			),
			appendAll(element(atom.Body),
				cell(atom.H1, text(title)),
				cell(atom.P, text(strconv.Itoa(len(m.Index))+" files")),
				appendAll(element(atom.Table), thead, tbody),
			),
		),
	)

	buf := &bytes.Buffer{}
	if err := html.Render(buf, doc); err != nil {
		return nil, errorInvalid("html", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
