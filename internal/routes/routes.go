// Package routes holds the static declarative route tree and the generic
// machinery that walks it: startup validation of role sets and mounting onto
// a chi router. The gate stays decoupled from the declaration syntax; it only
// ever sees a node's allowed-role set.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"styledecor/internal/domain"
	"styledecor/internal/gate"
)

// Node is one route in the tree. Path is relative to the parent and may
// contain chi-style parameters. A nil Allowed set means "public" outside the
// protected tree and "any authenticated user" inside it. GET may be nil on
// pure grouping nodes; POST registers a form action on the same path.
type Node struct {
	Path     string
	Allowed  domain.RoleSet
	GET      http.HandlerFunc
	POST     http.HandlerFunc
	Children []Node
}

// Validate asserts that no node under root broadens access beyond its
// ancestor chain: every declared allowed set must be a subset of the
// intersection of its ancestors' sets. A child outside that subset would be
// dead code, since the ancestor gate already rejects the role.
func Validate(root Node) error {
	return validate(root, root.Path, nil)
}

func validate(n Node, path string, inherited domain.RoleSet) error {
	effective := inherited
	if n.Allowed != nil {
		if inherited != nil && !n.Allowed.SubsetOf(inherited) {
			return fmt.Errorf("route %s: allowed roles %v exceed ancestor gate %v", path, roleList(n.Allowed), roleList(inherited))
		}
		effective = n.Allowed
	}
	for _, child := range n.Children {
		if err := validate(child, path+"/"+child.Path, effective); err != nil {
			return err
		}
	}
	return nil
}

func roleList(s domain.RoleSet) []string {
	out := make([]string, 0, len(s))
	for _, r := range []domain.Role{domain.RoleUser, domain.RoleDecorator, domain.RoleAdmin} {
		if s.Contains(r) {
			out = append(out, string(r))
		}
	}
	return out
}

// Mount registers the tree on r, wrapping every gated node in the access
// gate middleware. The tree is walked exactly once, at startup. A root path
// of "/" mounts the children directly so it does not shadow sibling trees.
func Mount(r chi.Router, g *gate.Gate, root Node) {
	if root.Path == "" || root.Path == "/" {
		r.Group(func(sr chi.Router) {
			if root.Allowed != nil {
				sr.Use(g.Require(root.Allowed))
			}
			mountInto(sr, g, root)
		})
		return
	}
	r.Route(prefixSlash(root.Path), func(sr chi.Router) {
		if root.Allowed != nil {
			sr.Use(g.Require(root.Allowed))
		}
		mountInto(sr, g, root)
	})
}

func mountInto(r chi.Router, g *gate.Gate, n Node) {
	register(r, g, "/", n, false)
	for _, child := range n.Children {
		if len(child.Children) > 0 {
			r.Route(prefixSlash(child.Path), func(sr chi.Router) {
				if child.Allowed != nil {
					sr.Use(g.Require(child.Allowed))
				}
				mountInto(sr, g, child)
			})
			continue
		}
		register(r, g, prefixSlash(child.Path), child, true)
	}
}

func register(r chi.Router, g *gate.Gate, pattern string, n Node, gated bool) {
	router := r
	if gated && n.Allowed != nil {
		router = r.With(g.Require(n.Allowed))
	}
	if n.GET != nil {
		router.Get(pattern, n.GET)
	}
	if n.POST != nil {
		router.Post(pattern, n.POST)
	}
}

func prefixSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// Find resolves a concrete request path against the tree, returning the
// matched node and the role set that effectively gates it (the innermost
// declared set along the chain). Parameter segments match any value.
func Find(root Node, path string) (Node, domain.RoleSet, bool) {
	segments := splitPath(strings.TrimPrefix(path, prefixSlash(root.Path)))
	return find(root, segments, root.Allowed)
}

func find(n Node, segments []string, effective domain.RoleSet) (Node, domain.RoleSet, bool) {
	if n.Allowed != nil {
		effective = n.Allowed
	}
	if len(segments) == 0 {
		return n, effective, n.GET != nil || n.POST != nil
	}
	for _, child := range n.Children {
		childSegs := splitPath(child.Path)
		if len(childSegs) == 0 || len(childSegs) > len(segments) {
			continue
		}
		if !segmentsMatch(childSegs, segments[:len(childSegs)]) {
			continue
		}
		if node, set, ok := find(child, segments[len(childSegs):], effective); ok {
			return node, set, true
		}
	}
	return Node{}, nil, false
}

func segmentsMatch(pattern, actual []string) bool {
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			continue
		}
		if p != actual[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
