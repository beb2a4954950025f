package mob

import (
	"fmt"

	"github.com/arloliu/eikit/format"
)

// SectionID is the 32-bit tag in a section header.
type SectionID uint32

// String returns the registered name of id, or its hexadecimal value.
func (id SectionID) String() string {
	if info, ok := registry[id]; ok {
		return info.name
	}

	return fmt.Sprintf("0x%08X", uint32(id))
}

// Known reports whether id is registered.
func (id SectionID) Known() bool {
	_, ok := registry[id]
	return ok
}

// TypeOf resolves the section type registered for id. Unregistered ids are
// format.SectionUnknown and only expose raw bytes.
func TypeOf(id SectionID) format.SectionType {
	if info, ok := registry[id]; ok {
		return info.typ
	}

	return format.SectionUnknown
}
