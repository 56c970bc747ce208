package arrange

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// present marks a stored arrangement; the trie skips nodes with a nil item.
type present struct{}

// resultSet collects arrangements keyed by string value.
type resultSet struct {
	trie *patricia.Trie
	size int
	seen int
}

func newResultSet() *resultSet {
	return &resultSet{trie: patricia.NewTrie()}
}

// add records one raw ordering.
func (s *resultSet) add(word string) {
	s.seen++
	s.insert(word)
}

func (s *resultSet) insert(word string) {
	if s.trie.Insert(patricia.Prefix(word), present{}) {
		s.size++
	}
}

// sorted returns every stored arrangement starting with prefix, in lexicographic order.
func (s *resultSet) sorted(prefix string) []string {
	capHint := s.size
	if prefix != "" {
		capHint = 0
	}
	words := make([]string, 0, capHint)
	err := s.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting result trie: %v", err)
	}
	slices.Sort(words)
	return words
}
