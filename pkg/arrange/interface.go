// Package arrange is the core, enumerating every distinct letter arrangement of a multiset of runes.
package arrange

// Enumerator defines the interface for arrangement engines
type Enumerator interface {
	// Enumerate returns the sorted, deduplicated arrangements for a request
	Enumerate(req Request) (Result, error)
}

// Request describes a single enumeration.
type Request struct {
	Mode   Mode
	Words  []string
	Prefix string // only arrangements starting with Prefix are returned
}

// Result holds the arrangements and the metadata the report header needs.
type Result struct {
	Words     []string
	Letters   Multiset
	Length    int // max length (combination) or fixed length (permutation)
	Orderings int // raw slot orderings visited before dedup
}
