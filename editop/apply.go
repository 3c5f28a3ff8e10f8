package editop

// Apply executes ops against source s and destination d, returning a newly
// allocated string. Unchanged source runs between consecutive ops are
// copied verbatim; Delete and Replace each consume one source symbol;
// Insert and Replace each emit d[op.DPos]. Assumes ops has already passed
// CheckElementary for len(s)/len(d) — malformed input is not re-checked.
func Apply[S ~byte | ~rune](ops Script, s, d []S) []S {
	out := make([]S, 0, len(s)+len(ops))
	cur := 0
	for _, op := range ops {
		out = append(out, s[cur:op.SPos]...)
		cur = op.SPos
		switch op.Kind {
		case Keep:
			out = append(out, s[cur])
			cur++
		case Replace:
			out = append(out, d[op.DPos])
			cur++
		case Insert:
			out = append(out, d[op.DPos])
		case Delete:
			cur++
		}
	}
	out = append(out, s[cur:]...)

	return out
}

// BlockApply executes ops (an OpcodeList) against source s and destination
// d, returning a newly allocated string. Keep copies s[SBeg:SEnd]; Insert
// and Replace copy d[DBeg:DEnd]; Delete emits nothing. Applicability is
// not re-checked.
func BlockApply[S ~byte | ~rune](ops OpcodeList, s, d []S) []S {
	n := 0
	for _, op := range ops {
		switch op.Kind {
		case Keep:
			n += op.SEnd - op.SBeg
		case Replace, Insert:
			n += op.DEnd - op.DBeg
		}
	}

	out := make([]S, 0, n)
	for _, op := range ops {
		switch op.Kind {
		case Keep:
			out = append(out, s[op.SBeg:op.SEnd]...)
		case Replace, Insert:
			out = append(out, d[op.DBeg:op.DEnd]...)
		case Delete:
			// emits nothing
		}
	}

	return out
}
