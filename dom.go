package readability

import (
	"net/url"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// This file is the tree/attribute primitive layer for the extraction engine
// (component A). Traversal, attribute and serialization primitives delegate
// to github.com/go-shiori/dom, which factors out exactly this DOM-helper
// layer for golang.org/x/net/html trees. Only the handful of helpers with no
// upstream equivalent — URL resolution, word counting, list membership, and
// the move-safe variant of AppendChild the candidate-promotion code in
// readability.go relies on — are implemented locally.

func firstElementChild(node *html.Node) *html.Node {
	return dom.FirstElementChild(node)
}

func nextElementSibling(node *html.Node) *html.Node {
	return dom.NextElementSibling(node)
}

// appendChild adds child to the end of node's children. Unlike a plain
// dom.AppendChild, if child is already attached elsewhere in the tree it is
// cloned first, since grabArticle() promotes and re-parents nodes while
// still walking their former siblings.
func appendChild(node *html.Node, child *html.Node) {
	if child.Parent != nil {
		dom.AppendChild(node, cloneNode(child))
		child.Parent.RemoveChild(child)
		return
	}

	dom.AppendChild(node, child)
}

func childNodes(node *html.Node) []*html.Node {
	return dom.ChildNodes(node)
}

// includeNode determines if node is included inside nodeList.
func includeNode(nodeList []*html.Node, node *html.Node) bool {
	for i := 0; i < len(nodeList); i++ {
		if nodeList[i] == node {
			return true
		}
	}

	return false
}

func cloneNode(node *html.Node) *html.Node {
	return dom.Clone(node, true)
}

func createElement(tagName string) *html.Node {
	return dom.CreateElement(tagName)
}

// createTextNode creates a new Text node. go-shiori/dom has no constructor
// for bare text nodes (it only builds elements), so this stays local.
func createTextNode(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

func getElementsByTagName(node *html.Node, tag string) []*html.Node {
	return dom.GetElementsByTagName(node, tag)
}

func getAttribute(node *html.Node, attrName string) string {
	return dom.GetAttribute(node, attrName)
}

func setAttribute(node *html.Node, attrName string, attrValue string) {
	dom.SetAttribute(node, attrName, attrValue)
}

func removeAttribute(node *html.Node, attrName string) {
	dom.RemoveAttribute(node, attrName)
}

func hasAttribute(node *html.Node, attrName string) bool {
	return dom.HasAttribute(node, attrName)
}

func outerHTML(node *html.Node) string {
	return dom.OuterHTML(node)
}

func innerHTML(node *html.Node) string {
	return strings.TrimSpace(dom.InnerHTML(node))
}

// documentElement returns the root element of the document.
func documentElement(doc *html.Node) *html.Node {
	nodes := dom.GetElementsByTagName(doc, "html")

	if len(nodes) > 0 {
		return nodes[0]
	}

	return nil
}

// className returns the value of the class attribute of the element,
// normalized to single spaces between class names.
func className(node *html.Node) string {
	cls := strings.TrimSpace(dom.ClassName(node))
	cls = rxNormalize.ReplaceAllString(cls, "\x20")
	return cls
}

// id returns the value of the id attribute of the specified element.
func id(node *html.Node) string {
	return strings.TrimSpace(dom.ID(node))
}

func children(node *html.Node) []*html.Node {
	if node == nil {
		return nil
	}

	return dom.Children(node)
}

// wordCount returns number of words in str. Not part of go-shiori/dom; this
// is a plain text utility local to the scoring engine.
func wordCount(str string) int {
	return len(strings.Fields(str))
}

// indexOf returns the first index at which a given element can be found in
// the array, or -1 if it is not present.
func indexOf(array []string, key string) int {
	for idx, val := range array {
		if val == key {
			return idx
		}
	}

	return -1
}

// replaceNode replaces a child node within the given (parent) node.
func replaceNode(oldNode *html.Node, newNode *html.Node) {
	if oldNode.Parent == nil {
		return
	}

	newNode.Parent = nil
	newNode.PrevSibling = nil
	newNode.NextSibling = nil
	dom.ReplaceChild(oldNode.Parent, newNode, oldNode)
}

func tagName(node *html.Node) string {
	if node.Type != html.ElementNode {
		return ""
	}

	return dom.TagName(node)
}

func textContent(node *html.Node) string {
	return dom.TextContent(node)
}

// toAbsoluteURI converts uri to an absolute URI relative to base. If uri is
// prefixed with a hash (#), it is returned unchanged. This has no
// go-shiori/dom equivalent; it is a thin wrapper over net/url.
func toAbsoluteURI(uri string, base *url.URL) string {
	if uri == "" || base == nil {
		return ""
	}

	if uri[:1] == "#" {
		return uri
	}

	tmp, err := url.ParseRequestURI(uri)
	if err == nil && tmp.Scheme != "" && tmp.Hostname() != "" {
		return uri
	}

	tmp, err = url.Parse(uri)
	if err != nil {
		return uri
	}

	return base.ResolveReference(tmp).String()
}
