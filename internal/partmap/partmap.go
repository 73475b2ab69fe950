// Package partmap provides a press count map partitioned by indirection depth.
package partmap

import (
	"fmt"

	"github.com/go-ricrob/keypadsolver/internal/packed"
)

// Stats reports the usage of a map.
type Stats struct {
	Size, Hits, Misses int
}

// Map stores the press count of a transition per depth.
// A Map is owned by a single caller and is not safe for concurrent use.
type Map struct {
	parts        []map[packed.Pair]int // indexed by depth
	hits, misses int
}

// New returns a map with numPart preallocated depth partitions.
func New(numPart int) *Map {
	pm := &Map{}
	pm.grow(numPart)
	return pm
}

func (pm *Map) grow(numPart int) {
	for len(pm.parts) < numPart {
		pm.parts = append(pm.parts, make(map[packed.Pair]int, 32))
	}
}

func (pm *Map) Load(depth int, k packed.Pair) (int, bool) {
	if depth < 0 || depth >= len(pm.parts) {
		pm.misses++
		return 0, false
	}
	v, ok := pm.parts[depth][k]
	if ok {
		pm.hits++
	} else {
		pm.misses++
	}
	return v, ok
}

// Store grows the map to depth if needed.
func (pm *Map) Store(depth int, k packed.Pair, v int) {
	if depth < 0 {
		panic(fmt.Sprintf("negative depth %d", depth))
	}
	pm.grow(depth + 1)
	pm.parts[depth][k] = v
}

func (pm *Map) Size() int {
	size := 0
	for _, part := range pm.parts {
		size += len(part)
	}
	return size
}

func (pm *Map) NumPart() int { return len(pm.parts) }

func (pm *Map) Stats() Stats { return Stats{Size: pm.Size(), Hits: pm.hits, Misses: pm.misses} }
