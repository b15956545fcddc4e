package idcase

// delimiterTrie is a prefix tree over delimiter runes. Edges are keyed by the
// full rune so delimiters outside Latin-1 never share a path.
type delimiterTrie struct {
	root trieNode
}

type trieNode struct {
	next map[rune]*trieNode
	// size is the rune length of the delimiter ending here, 0 if none.
	size int
}

func newDelimiterTrie(delims []string) *delimiterTrie {
	t := &delimiterTrie{}
	for _, d := range delims {
		if d != "" {
			t.add(d)
		}
	}
	return t
}

func (t *delimiterTrie) add(delim string) {
	cur := &t.root
	n := 0
	for _, r := range delim {
		if cur.next == nil {
			cur.next = make(map[rune]*trieNode, 1)
		}
		child, ok := cur.next[r]
		if !ok {
			child = &trieNode{}
			cur.next[r] = child
		}
		cur = child
		n++
	}
	cur.size = n
}

// longestMatch returns the rune length of the longest delimiter that is a
// prefix of buf[pos:].
func (t *delimiterTrie) longestMatch(buf []rune, pos int) (int, bool) {
	cur := &t.root
	best := 0
	for i := pos; i < len(buf) && cur.next != nil; i++ {
		next, ok := cur.next[buf[i]]
		if !ok {
			break
		}
		cur = next
		if cur.size > 0 {
			best = cur.size
		}
	}
	return best, best > 0
}
