package widget

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Keygen: true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// renderTag renders an element with content inserted as is: content is
// markup, not text. Void elements are rendered without content.
func renderTag(tag, content string, attrs Attrs) string {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs.htmlAttributes(),
	}

	if content != "" && !voidElements[node.DataAtom] {
		node.AppendChild(&html.Node{
			Type: html.RawNode,
			Data: content,
		})
	}

	buf := bytes.Buffer{}

	if err := html.Render(&buf, node); err != nil {
		buf.Reset()

		node.FirstChild, node.LastChild = nil, nil

		if err := html.Render(&buf, node); err != nil {
			return ""
		}
	}

	return buf.String()
}

func renderImg(src string, attrs Attrs) string {
	attrs = attrs.clone()
	attrs["src"] = src

	return renderTag("img", "", attrs)
}

func renderLink(label, href string, attrs Attrs) string {
	attrs = attrs.clone()
	attrs["href"] = href

	return renderTag("a", label, attrs)
}

func escapeHTML(text string) string {
	return html.EscapeString(text)
}
