package collection

import (
	"context"
	"fmt"
	"strings"
)

// Node is a parsed collection directive.
type Node struct {
	App     string
	Model   string
	Manager string
	VarName string

	registry *Registry
}

// Parse reads a directive of the form
//
//	<tag> <app> <model> [<manager>] as <varname>
//
// and verifies that the app and model are registered.
func (r *Registry) Parse(directive string) (*Node, error) {
	return r.ParseTokens(strings.Fields(directive))
}

// ParseTokens is Parse for an already split directive.
func (r *Registry) ParseTokens(bits []string) (*Node, error) {
	tag := "directive"
	if len(bits) > 0 {
		tag = bits[0]
	}

	var node *Node
	switch len(bits) {
	case 5:
		if bits[3] != "as" {
			return nil, fmt.Errorf("%w: Third or fourth argument for %s must be 'as'", ErrSyntax, tag)
		}
		node = &Node{App: bits[1], Model: bits[2], Manager: DefaultManager, VarName: bits[4]}
	case 6:
		if bits[4] != "as" {
			return nil, fmt.Errorf("%w: Third or fourth argument for %s must be 'as'", ErrSyntax, tag)
		}
		node = &Node{App: bits[1], Model: bits[2], Manager: bits[3], VarName: bits[5]}
	default:
		return nil, fmt.Errorf("%w: %s tag takes three or four arguments", ErrSyntax, tag)
	}

	if err := r.checkModel(node.App, node.Model); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	node.registry = r
	return node, nil
}

// Render stores the collection in scope under the node's variable name.
// It produces no output of its own.
func (n *Node) Render(ctx context.Context, scope map[string]any) (string, error) {
	if scope == nil {
		return "", ErrNilScope
	}
	items, err := n.registry.All(ctx, n.App, n.Model, n.Manager)
	if err != nil {
		return "", err
	}
	scope[n.VarName] = items
	return "", nil
}

// String returns the directive in its canonical form.
func (n *Node) String() string {
	return fmt.Sprintf("get_list_of_objects %s %s %s as %s", n.App, n.Model, n.Manager, n.VarName)
}
