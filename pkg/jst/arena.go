package jst

import "sync/atomic"

// NodeID identifies a Node. IDs are unique within the process.
type NodeID uint64

// ComponentID identifies a Component. IDs are unique within the process.
type ComponentID uint64

var (
	nodeSeq      atomic.Uint64
	componentSeq atomic.Uint64
)

func nextNodeID() NodeID { return NodeID(nodeSeq.Add(1)) }

func nextComponentID() ComponentID { return ComponentID(componentSeq.Add(1)) }

// arena resolves the weak links between nodes and components. A node knows
// its owner and a fragment knows its component only by id; a component
// knows its container only by id. Entries are added when an object first
// takes part in a live or retained tree and dropped when it is released, so
// trees that are built and thrown away never enter the arena.
type arena struct {
	nodes map[NodeID]*Node
	comps map[ComponentID]*Component
}

func newArena() *arena {
	return &arena{
		nodes: make(map[NodeID]*Node),
		comps: make(map[ComponentID]*Component),
	}
}

func (a *arena) trackNode(n *Node) {
	a.nodes[n.id] = n
}

func (a *arena) trackComponent(c *Component) {
	a.comps[c.id] = c
}

func (a *arena) node(id NodeID) *Node {
	if id == 0 {
		return nil
	}
	return a.nodes[id]
}

func (a *arena) component(id ComponentID) *Component {
	if id == 0 {
		return nil
	}
	return a.comps[id]
}

func (a *arena) forgetNode(n *Node) {
	delete(a.nodes, n.id)
}

func (a *arena) forgetComponent(c *Component) {
	delete(a.comps, c.id)
}

// Stats reports how many nodes and components an engine is tracking.
type Stats struct {
	Nodes      int
	Components int
}
