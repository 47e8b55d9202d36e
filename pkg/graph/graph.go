package graph

import "fmt"

// Scene is the top-level immutable data structure produced by script
// evaluation. It is never mutated in place; each evaluation produces a new
// scene.
type Scene struct {
	Nodes     map[NodeID]*Node  `json:"nodes"`
	Roots     []NodeID          `json:"roots"`
	NameIndex map[string]NodeID `json:"name_index"`
	Version   uint64            `json:"version"`

	order []NodeID // insertion order
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
	}
}

// AddNode adds a node to the scene. It does not check for duplicates.
func (g *Scene) AddNode(n *Node) {
	if _, ok := g.Nodes[n.ID]; !ok {
		g.order = append(g.order, n.ID)
	}
	g.Nodes[n.ID] = n
	if n.Name != "" {
		g.NameIndex[n.Name] = n.ID
	}
}

// AddRoot registers a node ID as a root of the scene.
func (g *Scene) AddRoot(id NodeID) {
	g.Roots = append(g.Roots, id)
}

// RemoveRoot drops id from the roots. It is called when a root is nested
// under another node.
func (g *Scene) RemoveRoot(id NodeID) {
	roots := g.Roots[:0]
	for _, r := range g.Roots {
		if r != id {
			roots = append(roots, r)
		}
	}
	g.Roots = roots
}

// Lookup returns the node with the given user-assigned name, or nil.
func (g *Scene) Lookup(name string) *Node {
	id, ok := g.NameIndex[name]
	if !ok {
		return nil
	}
	return g.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (g *Scene) MustLookup(name string) *Node {
	n := g.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("graph: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (g *Scene) Get(id NodeID) *Node {
	return g.Nodes[id]
}

// Shapes returns all shape nodes in the scene.
func (g *Scene) Shapes() []*Node {
	var shapes []*Node
	for _, n := range g.Nodes {
		if n.Kind == NodeShape {
			shapes = append(shapes, n)
		}
	}
	return shapes
}

// Children returns the child nodes of the given node.
func (g *Scene) Children(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if c := g.Nodes[cid]; c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NodeCount returns the total number of nodes.
func (g *Scene) NodeCount() int {
	return len(g.Nodes)
}

// TopLevel returns the nodes no other node lists as a child, in the order
// they were added. A scene without roots is drawn from these.
func (g *Scene) TopLevel() []NodeID {
	referenced := g.referenced()
	var top []NodeID
	for _, id := range g.order {
		if _, ok := g.Nodes[id]; ok && !referenced[id] {
			top = append(top, id)
		}
	}
	return top
}

// DrawRoots returns the nodes a renderer should start from: each root
// once, skipping roots that also appear as a child of another node so a
// nested subtree is drawn only through its parent. A scene without roots
// falls back to TopLevel.
func (g *Scene) DrawRoots() []NodeID {
	if len(g.Roots) == 0 {
		return g.TopLevel()
	}
	referenced := g.referenced()
	seen := make(map[NodeID]bool, len(g.Roots))
	var roots []NodeID
	for _, id := range g.Roots {
		if referenced[id] || seen[id] {
			continue
		}
		seen[id] = true
		roots = append(roots, id)
	}
	return roots
}

func (g *Scene) referenced() map[NodeID]bool {
	referenced := make(map[NodeID]bool)
	for _, n := range g.Nodes {
		for _, c := range n.Children {
			referenced[c] = true
		}
	}
	return referenced
}
