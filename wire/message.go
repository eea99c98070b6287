package wire

// TryMessage speculatively tokenizes payload as a message at the given
// depth. It is a trial: nothing is mutated and a rejection simply returns
// false. The payload is accepted only when it yields at least one field
// and leaves no trailing bytes, so text that happens to start with a
// tag-like byte is not mistaken for a message.
//
// An empty payload is rejected. An empty nested message cannot be told
// apart from an empty string or bytes value without a schema.
func TryMessage(payload []byte, offset, depth, maxDepth int) (*ParseResult, bool) {
	if len(payload) == 0 {
		return nil, false
	}

	result := Tokenize(payload, offset, depth, maxDepth)
	if len(result.Fields) == 0 || len(result.Trailing) > 0 {
		return nil, false
	}
	return result, true
}

// resolveBytes classifies a length-delimited payload, in order: nested
// message, UTF-8 string, opaque bytes. At the depth bound the payload is
// kept opaque without any recursion.
func (d *Decoder) resolveBytes(payload []byte, offset int) (*ParseResult, []Interpretation) {
	if d.depth >= d.maxDepth {
		return nil, opaqueBytes(payload)
	}

	if nested, ok := TryMessage(payload, offset, d.depth+1, d.maxDepth); ok {
		return nested, []Interpretation{{Kind: KindMessage, Value: len(nested.Fields)}}
	}

	return nil, InterpretBytes(payload)
}

func opaqueBytes(payload []byte) []Interpretation {
	out := []Interpretation{{Kind: KindBytes, Value: payload}}
	return append(out, packedCandidates(payload)...)
}
