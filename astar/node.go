package astar

import "encoding/binary"

// node is a search-tree node: a state vector, its g-cost from the root,
// and a predecessor link plus the operator name that produced it from
// its parent. Nodes never carry a copy of the plan prefix; buildPlan
// walks the parent chain once, on goal hit.
type node struct {
	state  []int
	g      int
	op     string
	parent *node
}

// stateKey packs a state vector into a dense, self-delimiting byte
// string suitable as a map key. Varint encoding is prefix-free and every
// state vector compared has the same length (the task's variable
// count), so distinct vectors always pack to distinct keys.
func stateKey(state []int) string {
	buf := make([]byte, 0, len(state)*2)
	tmp := make([]byte, binary.MaxVarintLen64)
	for _, v := range state {
		n := binary.PutUvarint(tmp, uint64(v))
		buf = append(buf, tmp[:n]...)
	}

	return string(buf)
}

// buildPlan walks n's predecessor chain to the root and reverses it into
// an ordered operator sequence.
func buildPlan(n *node) *Plan {
	var ops []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		ops = append(ops, cur.op)
	}
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	return &Plan{Operators: ops, Cost: n.g}
}
