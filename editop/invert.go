package editop

// flip swaps Insert<->Delete and leaves Keep/Replace unchanged.
func (k Kind) flip() Kind {
	switch k {
	case Insert:
		return Delete
	case Delete:
		return Insert
	default:
		return k
	}
}

// Invert inverts ops in place, producing the elementary script that
// transforms D back into S: positions are swapped (spos<->dpos) and
// Insert/Delete are exchanged; Keep and Replace are left as-is. ops is
// returned for convenient chaining. Assumes ops has already passed
// CheckElementary — malformed input is not re-validated.
func (ops Script) Invert() Script {
	for i := range ops {
		ops[i].Kind = ops[i].Kind.flip()
		ops[i].SPos, ops[i].DPos = ops[i].DPos, ops[i].SPos
	}

	return ops
}

// Invert inverts ops in place, the block-list counterpart of
// Script.Invert: source and destination spans are swapped and
// Insert/Delete are exchanged. ops is returned for chaining. Assumes ops
// has already passed CheckBlock.
func (ops OpcodeList) Invert() OpcodeList {
	for i := range ops {
		ops[i].Kind = ops[i].Kind.flip()
		ops[i].SBeg, ops[i].DBeg = ops[i].DBeg, ops[i].SBeg
		ops[i].SEnd, ops[i].DEnd = ops[i].DEnd, ops[i].SEnd
	}

	return ops
}
