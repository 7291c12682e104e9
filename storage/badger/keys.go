package badger

import (
	"fmt"

	"github.com/majormentor/unigo/core"
)

// Key prefixes for different data types
const (
	programRecordPrefix = "prgrec"
	programNamePrefix   = "prgname"
	institutionPrefix   = "insrec"
	searchDocPrefix     = "docrec"
)

// makeProgramKey generates a key for a program record by id.
func makeProgramKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", programRecordPrefix, id))
}

// makeProgramNameKey generates a key for the exact-name index.
// The name must already be folded with core.NormalizeKey.
func makeProgramNameKey(nameKey string) []byte {
	return []byte(fmt.Sprintf("%s:%s", programNamePrefix, nameKey))
}

// makeInstitutionKey generates a key for an institution record.
// The name must already be folded with core.InstitutionKey.
func makeInstitutionKey(nameKey string) []byte {
	return []byte(fmt.Sprintf("%s:%s", institutionPrefix, nameKey))
}

// makeSearchDocKey generates a key for an embedded document.
func makeSearchDocKey(program core.ID, doc core.DocType) []byte {
	return []byte(fmt.Sprintf("%s:%d:%d", searchDocPrefix, program, doc))
}
