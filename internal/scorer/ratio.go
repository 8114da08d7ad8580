// Ratcliff/Obershelp matching-block sequence similarity, used to compute
// token_sort_ratio (spec §4.E Stage 4): the query and candidate alias are
// each tokenized, sorted, rejoined, and compared with this ratio. No
// library in the available toolchain implements Fuzzywuzzy's specific
// token_sort_ratio formulation, so this is a from-scratch matching-block
// walk -- the spec explicitly allows substituting any equivalent
// token-order-insensitive edit-similarity here.
package scorer

import "sort"

// tokenSortRatio computes token_sort_ratio(a, b) as an integer in
// [0, 100]: split each operand on whitespace, sort the tokens
// lexicographically, rejoin with a single space, and compare the two
// resulting strings with the Ratcliff/Obershelp matching-block ratio.
func tokenSortRatio(a, b string) int {
	return int(ratclissObershelp(sortedJoin(a), sortedJoin(b))*100 + 0.5)
}

func sortedJoin(s string) string {
	fields := splitFields(s)
	sort.Strings(fields)
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += " "
		}
		out += f
	}
	return out
}

func splitFields(s string) []string {
	var fields []string
	start := -1
	for i, r := range s {
		if r == ' ' {
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

// ratclissObershelp returns the Ratcliff/Obershelp similarity of a and b
// in [0, 1]: twice the total length of the recursively-found longest
// common matching blocks, divided by len(a)+len(b).
func ratclissObershelp(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	matched := matchingBlockLength([]rune(a), []rune(b))
	return 2.0 * float64(matched) / float64(len([]rune(a))+len([]rune(b)))
}

// matchingBlockLength recursively sums the lengths of the longest common
// substrings found by Ratcliff/Obershelp's "gestalt pattern matching":
// find the single longest common substring, then recurse on the
// unmatched prefix and suffix on both sides.
func matchingBlockLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, length := longestCommonSubstring(a, b)
	if length == 0 {
		return 0
	}
	total := length
	total += matchingBlockLength(a[:ai], b[:bi])
	total += matchingBlockLength(a[ai+length:], b[bi+length:])
	return total
}

// longestCommonSubstring finds the longest run of runes common to a and
// b, returning its start index in each and its length. Ties break toward
// the earliest match in a, then in b, matching the conventional
// difflib/Ratcliff-Obershelp tie-break.
func longestCommonSubstring(a, b []rune) (aStart, bStart, length int) {
	// dp[j] holds the length of the common suffix ending at a[i-1], b[j-1]
	// for the previous row; rolled forward one row at a time.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	best := 0
	bestA, bestB := 0, 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best = curr[j]
					bestA = i - best
					bestB = j - best
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
		for j := range curr {
			curr[j] = 0
		}
	}

	return bestA, bestB, best
}
