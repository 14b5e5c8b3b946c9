package codegen

import "github.com/llir/llvm/ir"

// eliminateDeadBlocks drops every block unreachable from entry (the first
// block), the Go-native equivalent of an unreachable-block-elimination
// pass: the if.false block of an If without an else branch (left without
// a terminator) and the fresh block opened after a return are never
// branched to.
func eliminateDeadBlocks(fn *ir.Func) {
	if len(fn.Blocks) == 0 {
		return
	}

	entry := fn.Blocks[0]
	reachable := map[*ir.Block]bool{entry: true}
	queue := []*ir.Block{entry}

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		if b.Term == nil {
			continue
		}
		for _, succ := range b.Term.Succs() {
			if !reachable[succ] {
				reachable[succ] = true
				queue = append(queue, succ)
			}
		}
	}

	kept := make([]*ir.Block, 0, len(fn.Blocks))
	for _, b := range fn.Blocks {
		if reachable[b] {
			kept = append(kept, b)
		}
	}
	fn.Blocks = kept
}
