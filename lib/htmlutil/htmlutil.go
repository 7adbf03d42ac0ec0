package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/catsplus/radiograb-sub001/lib/textutil"
)

// GetText returns the concatenated text content of a node and all of
// its descendants.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// StripTags renders untrusted markup down to its visible text.
// Unparseable input is returned as-is, descriptions are best-effort.
func StripTags(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return markup
	}
	return textutil.CollapseWhitespace(GetText(doc))
}

type Anchor struct {
	Name string
	Href string
}

// GetAnchors collects the cleaned link text and href of every node in
// the selection.
func GetAnchors(sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}

		name := GetText(n)
		name = textutil.StripNonPrint(name)
		name = textutil.CollapseWhitespace(name)

		anchors = append(anchors, Anchor{Name: name, Href: href})
	}
	return anchors
}

// DocumentFromString parses an HTML document from memory.
func DocumentFromString(contents string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(contents))
}
