package ast

// NodeID indexes a node inside an Arena. 0 is reserved.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
