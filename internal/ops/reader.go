// SPDX-License-Identifier: Unlicense OR MIT

package ops

// Reader parses an ops list.
type Reader struct {
	pc  pc
	ops *Ops
}

// EncodedOp represents an encoded op returned by
// Reader.
type EncodedOp struct {
	Data []byte
	Refs []interface{}
}

type pc struct {
	data int
	refs int
}

// Reset start reading from the op list.
func (r *Reader) Reset(ops *Ops) {
	r.pc = pc{}
	r.ops = ops
}

// Decode returns the next operation in the list, if any.
func (r *Reader) Decode() (EncodedOp, bool) {
	if r.ops == nil {
		return EncodedOp{}, false
	}
	data := r.ops.data[r.pc.data:]
	if len(data) == 0 {
		return EncodedOp{}, false
	}
	t := OpType(data[0])
	n := t.Size()
	nrefs := t.NumRefs()
	data = data[:n]
	refs := r.ops.refs[r.pc.refs : r.pc.refs+nrefs]
	r.pc.data += n
	r.pc.refs += nrefs
	return EncodedOp{Data: data, Refs: refs}, true
}
