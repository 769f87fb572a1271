package ast

// Node is embedded in every AST node. It carries the node's source location
// and a flags bitset. The high bits (30..27) hold flags common to every
// node kind; each concrete node type is free to define its own flags in the
// low bits, the same way the AST this compiler is modeled on reuses one
// flags word per node rather than one bitset type per node kind.
type Node struct {
	Area  SourceArea
	Flags uint32
}

// Common flags, shared by every node kind.
const (
	// FlagIsReachable marks a node transitively referenced from the chosen entry point.
	FlagIsReachable uint32 = 1 << 30
	// FlagIsDeadCode marks a statement that follows an unconditional control transfer.
	FlagIsDeadCode uint32 = 1 << 29
	// FlagIsBuildIn marks a node synthesized by the converter rather than parsed from source.
	FlagIsBuildIn uint32 = 1 << 28
	// FlagDisableCodeGen marks a node the generator must skip entirely (§4.4.6).
	FlagDisableCodeGen uint32 = 1 << 27
)

func (n *Node) has(flag uint32) bool  { return n.Flags&flag != 0 }
func (n *Node) set(flag uint32)       { n.Flags |= flag }
func (n *Node) clear(flag uint32)     { n.Flags &^= flag }

// IsReachable reports whether the reference analyzer marked this node live.
func (n *Node) IsReachable() bool { return n.has(FlagIsReachable) }

// SetReachable marks this node as transitively referenced from the entry point.
func (n *Node) SetReachable() { n.set(FlagIsReachable) }

// IsDeadCode reports whether this statement follows an unconditional return/break/continue.
func (n *Node) IsDeadCode() bool { return n.has(FlagIsDeadCode) }

// SetDeadCode marks this statement as unreachable control flow.
func (n *Node) SetDeadCode() { n.set(FlagIsDeadCode) }

// IsBuildIn reports whether the converter synthesized this node.
func (n *Node) IsBuildIn() bool { return n.has(FlagIsBuildIn) }

// SetBuildIn marks this node as converter-synthesized, not part of the parsed source.
func (n *Node) SetBuildIn() { n.set(FlagIsBuildIn) }

// DisableCodeGen reports whether the generator must skip this node (§4.4.6).
func (n *Node) DisableCodeGen() bool { return n.has(FlagDisableCodeGen) }

// SetDisableCodeGen marks this node as having no GLSL equivalent to emit.
func (n *Node) SetDisableCodeGen() { n.set(FlagDisableCodeGen) }
