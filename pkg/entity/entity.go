// pkg/entity/entity.go
package entity

import "sync/atomic"

// ID is a unique identifier for an entity
type ID uint64

// nextEntityID is the global counter for entity ID generation
var nextEntityID uint64

// GenerateID returns a process-unique entity ID
func GenerateID() ID {
	return ID(atomic.AddUint64(&nextEntityID, 1))
}
