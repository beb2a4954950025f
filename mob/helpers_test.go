package mob

import "encoding/binary"

// section encodes one headed section around payload.
func section(id SectionID, payload ...[]byte) []byte {
	size := HeaderSize
	for _, p := range payload {
		size += len(p)
	}

	b := binary.LittleEndian.AppendUint32(nil, uint32(id))
	b = binary.LittleEndian.AppendUint32(b, uint32(size))
	for _, p := range payload {
		b = append(b, p...)
	}

	return b
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

func u32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// sampleFile builds a small .mob body with an object database, a script and
// an opaque section.
func sampleFile() []byte {
	object := section(IDObject,
		section(IDNID, u32(42)),
		section(IDObjName, []byte("Hero\x00")),
		section(IDObjPlayer, []byte{3}),
	)

	return concat(
		section(IDObjectDBFile,
			section(IDObjectSection, object),
			section(IDScriptTextOld, []byte("script")),
		),
		section(SectionID(0x12345678), []byte{0xDE, 0xAD}),
	)
}
