package badger

import (
	"bytes"
	"fmt"

	"github.com/poiesic/locate/core"
)

// Key prefixes for different data types
const (
	snapshotPrefix     = "snaprec:"
	snapshotNamePrefix = "snapname:"
	aliasPrefix        = "alias:"
)

// makeSnapshotKey generates a key for a snapshot by ID.
func makeSnapshotKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s%d", snapshotPrefix, id))
}

// makeSnapshotNameKey generates the key of the name index.
// Format: prefix:name
func makeSnapshotNameKey(name string) []byte {
	return []byte(snapshotNamePrefix + name)
}

// makeAliasKey generates a key for an alias by name.
func makeAliasKey(name string) []byte {
	return []byte(aliasPrefix + name)
}

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return bytes.HasPrefix(s, prefix)
}
