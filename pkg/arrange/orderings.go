package arrange

import (
	"iter"
	"math/big"
)

// Orderings yields every injective ordering of k slots of letters as a string.
// Slots are distinct even when their letters repeat, so the sequence holds
// duplicates: for N letters it yields exactly N!/(N-k)! values.
// Nothing is yielded when k is outside 1..len(letters).
func Orderings(letters []rune, k int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if k <= 0 || k > len(letters) {
			return
		}

		used := make([]bool, len(letters))
		word := make([]rune, k)

		var place func(depth int) bool
		place = func(depth int) bool {
			if depth == k {
				return yield(string(word))
			}
			for slot, r := range letters {
				if used[slot] {
					continue
				}
				used[slot] = true
				word[depth] = r
				ok := place(depth + 1)
				used[slot] = false
				if !ok {
					return false
				}
			}
			return true
		}
		place(0)
	}
}

// RawOrderings counts the slot orderings visited for n letters over lengths
// kmin..kmax, i.e. the sum of n!/(n-k)!. It grows factorially with n.
func RawOrderings(n, kmin, kmax int) *big.Int {
	total := new(big.Int)
	if kmin < 1 {
		kmin = 1
	}
	if kmax > n {
		kmax = n
	}
	term := big.NewInt(1)
	for k := 1; k <= kmax; k++ {
		term.Mul(term, big.NewInt(int64(n-k+1)))
		if k >= kmin {
			total.Add(total, term)
		}
	}
	return total
}
