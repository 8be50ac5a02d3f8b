package readability

import (
	"strings"

	"golang.org/x/net/html"
)

// validEmptyTags may legitimately have no text content; removeEmptyNodes
// leaves them alone. Grounded on original_source's VALID_EMPTY_TAGS.
var validEmptyTags = map[string]bool{
	"canvas": true, "colgroup": true, "col": true, "hr": true, "br": true,
	"img": true, "input": true, "param": true, "source": true, "track": true,
	"embed": true, "iframe": true, "video": true, "audio": true,
	"object": true, "td": true, "th": true,
}

// unwrapSchemaOrgObjects flattens schema.org microdata wrapper elements
// (itemscope with an itemtype referencing schema.org) by splicing their
// children into the wrapper's former position and discarding the wrapper
// itself. Sites that mark up an article with schema.org Article/NewsArticle
// microdata often nest the real content one level deeper than it needs to
// be for extraction purposes. This runs during post-processing, after
// scoring has finished. Grounded on original_source's
// replace_schema_org_orbjects.
func unwrapSchemaOrgObjects(root *html.Node) {
	var wrappers []*html.Node
	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasAttribute(n, "itemscope") {
			itemtype := getAttribute(n, "itemtype")
			if strings.Contains(itemtype, "schema.org") {
				wrappers = append(wrappers, n)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	for _, wrapper := range wrappers {
		parent := wrapper.Parent
		if parent == nil {
			continue
		}

		for child := wrapper.FirstChild; child != nil; {
			next := child.NextSibling
			wrapper.RemoveChild(child)
			parent.InsertBefore(child, wrapper)
			child = next
		}

		parent.RemoveChild(wrapper)
	}
}

// simplifyNestedElements collapses a run of single-child DIV/SECTION
// wrappers down to the innermost node, merging the outer wrapper's class
// onto the surviving child when the child has none of its own. Grounded on
// original_source's simplify_nested_elements.
func simplifyNestedElements(root *html.Node) {
	node := root

	for node != nil {
		tag := tagName(node)
		parent := node.Parent

		if parent != nil && (tag == "div" || tag == "section") &&
			!strings.Contains(className(node), "page") {

			if isElementWithoutContentLike(node) {
				node = removeAndAdvance(node)
				continue
			}

			if single := singleElementChild(node); single != nil {
				childTag := tagName(single)
				if childTag == "div" || childTag == "section" {
					if getAttribute(single, "class") == "" && getAttribute(node, "class") != "" {
						setAttribute(single, "class", getAttribute(node, "class"))
					}
					replaceNode(node, single)
					node = single
					continue
				}
			}
		}

		node = nextNodeForWalk(node)
	}
}

func singleElementChild(node *html.Node) *html.Node {
	var only *html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		if c.Type != html.ElementNode {
			return nil
		}
		if only != nil {
			return nil
		}
		only = c
	}
	return only
}

func isElementWithoutContentLike(node *html.Node) bool {
	return strings.TrimSpace(textContent(node)) == "" && node.FirstChild == nil
}

func removeAndAdvance(node *html.Node) *html.Node {
	next := nextNodeForWalk(node)
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
	return next
}

// nextNodeForWalk does a plain pre-order DOM walk (no early termination
// semantics, unlike Readability.getNextNode): first child, else next
// sibling, else the nearest ancestor's next sibling.
func nextNodeForWalk(node *html.Node) *html.Node {
	if node.FirstChild != nil {
		return node.FirstChild
	}

	for node != nil {
		if node.NextSibling != nil {
			return node.NextSibling
		}
		node = node.Parent
	}

	return nil
}

// removeEmptyNodes strips any element that is not itself in validEmptyTags
// and has no non-whitespace text and no validEmptyTags descendant. Attributes
// are not considered. Grounded on original_source's remove_empty_nodes.
func removeEmptyNodes(root *html.Node) {
	var candidates []*html.Node
	var walk func(*html.Node)

	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && !validEmptyTags[n.Data] {
			candidates = append(candidates, n)
		}
	}

	walk(root)

	for _, n := range candidates {
		if n.Parent == nil {
			continue
		}

		if strings.TrimSpace(textContent(n)) != "" {
			continue
		}

		if hasAnyDescendant(n, validEmptyTags) {
			continue
		}

		n.Parent.RemoveChild(n)
	}
}

func hasAnyDescendant(node *html.Node, tags map[string]bool) bool {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && tags[c.Data] {
			return true
		}
		if hasAnyDescendant(c, tags) {
			return true
		}
	}
	return false
}
