package mpr

// stage names the step a load or save failed in.
type stage uint8

const (
	stageOpen stage = iota
	stageHeader
	stageTables
	stageSectors
	stageArchive
	stageCommit
)

func (s stage) String() string {
	switch s {
	case stageOpen:
		return "open"
	case stageHeader:
		return "header"
	case stageTables:
		return "tables"
	case stageSectors:
		return "sectors"
	case stageArchive:
		return "archive"
	case stageCommit:
		return "commit"
	default:
		return "unknown"
	}
}
