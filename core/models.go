package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Snapshot is a captured HTML page that locators can be evaluated against.
type Snapshot struct {
	Id         ID
	Name       string
	URL        string
	HTML       string
	CapturedAt time.Time         // When the page was captured
	InsertedAt time.Time         // When the snapshot was stored
	Metadata   map[string]string // Optional metadata (e.g., "browser", "viewport")
}

// Alias is a named, saved locator string.
type Alias struct {
	Name      string
	Locator   string
	UpdatedAt time.Time
}
