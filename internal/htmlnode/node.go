// Package htmlnode models the output HTML tree.
//
// A Node is either a leaf (optional tag, optional text value, no children)
// or a parent (tag plus owned, ordered children). Both shapes share one type
// and are built with Leaf, RawText, Void and Parent. Invariants are checked
// when Render is called so that trees can be assembled in stages.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rendering.
var (
	ErrMissingValue    = errors.New("leaf node must have a value")
	ErrMissingTag      = errors.New("parent node must have a tag")
	ErrMissingChildren = errors.New("parent node must have children")
)

// Kind distinguishes the two node shapes.
type Kind int

const (
	KindLeaf Kind = iota
	KindParent
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindParent:
		return "parent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// voidElements render as a single self-closing tag and carry no value.
var voidElements = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
}

// Node is one node of an HTML tree.
type Node struct {
	kind     Kind
	tag      string
	value    string
	hasValue bool
	attrs    Attributes
	children []*Node
}

// Leaf creates a leaf node with a tag and a value.
// An empty tag makes the leaf render its value as raw text.
func Leaf(tag, value string, attrs Attributes) *Node {
	return &Node{
		kind:     KindLeaf,
		tag:      tag,
		value:    value,
		hasValue: true,
		attrs:    attrs.Clone(),
	}
}

// RawText creates an untagged leaf that renders value unchanged.
func RawText(value string) *Node {
	return Leaf("", value, nil)
}

// Void creates a leaf without a value. Only void elements (img, br, hr)
// render without one; any other tag fails with ErrMissingValue.
func Void(tag string, attrs Attributes) *Node {
	return &Node{
		kind:  KindLeaf,
		tag:   tag,
		attrs: attrs.Clone(),
	}
}

// Parent creates a parent node owning children.
// The children slice is copied; the nodes themselves are not.
func Parent(tag string, children []*Node, attrs Attributes) *Node {
	owned := make([]*Node, len(children))
	copy(owned, children)
	return &Node{
		kind:     KindParent,
		tag:      tag,
		attrs:    attrs.Clone(),
		children: owned,
	}
}

// Kind reports whether n is a leaf or a parent.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element name, empty for raw text leaves.
func (n *Node) Tag() string { return n.tag }

// Value returns the leaf value and whether one was set.
func (n *Node) Value() (string, bool) { return n.value, n.hasValue }

// Attributes returns a copy of the node attributes.
func (n *Node) Attributes() Attributes { return n.attrs.Clone() }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Render serializes the node and its subtree.
func (n *Node) Render() (string, error) {
	var sb strings.Builder
	if err := n.render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String renders the node, returning an error marker instead of failing.
// Meant for debugging and test output.
func (n *Node) String() string {
	s, err := n.Render()
	if err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return s
}

func (n *Node) render(sb *strings.Builder) error {
	if n.kind == KindParent {
		return n.renderParent(sb)
	}
	return n.renderLeaf(sb)
}

func (n *Node) renderLeaf(sb *strings.Builder) error {
	if !n.hasValue {
		if voidElements[n.tag] {
			sb.WriteString("<" + n.tag + n.attrs.Render() + "/>")
			return nil
		}
		if n.tag == "" {
			return ErrMissingValue
		}
		return fmt.Errorf("%w: <%s>", ErrMissingValue, n.tag)
	}
	if n.tag == "" {
		sb.WriteString(n.value)
		return nil
	}
	sb.WriteString("<" + n.tag + n.attrs.Render() + ">")
	sb.WriteString(n.value)
	sb.WriteString("</" + n.tag + ">")
	return nil
}

func (n *Node) renderParent(sb *strings.Builder) error {
	if n.tag == "" {
		return ErrMissingTag
	}
	if len(n.children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, n.tag)
	}
	sb.WriteString("<" + n.tag + n.attrs.Render() + ">")
	for _, child := range n.children {
		if err := child.render(sb); err != nil {
			return err
		}
	}
	sb.WriteString("</" + n.tag + ">")
	return nil
}
