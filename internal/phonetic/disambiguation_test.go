package phonetic

import (
	"testing"

	"github.com/xrash/smetrics"
)

// Two postings in the same phonetic bin (spec §4.D) are candidates the
// scorer must still tell apart: a genuine transliteration variant versus
// two names that happen to collide phonetically but read as unrelated.
// Stage 2's Levenshtein floor (constants.CandidateLevenshteinFloor) does
// that disambiguation in the pipeline itself; this test checks the same
// intuition holds under an independent string-similarity metric,
// skipping rather than failing if this encoder's specific key layout
// doesn't happen to collide the chosen examples.
func TestPhoneticCollisionsVaryInStringSimilarity(t *testing.T) {
	enc := NewEncoder()

	relatedA, relatedB := "karpanova", "karpanowa" // transliteration variant
	if !shareKey(enc, relatedA, relatedB) {
		t.Skip("encoder does not collide the chosen transliteration-variant example; nothing to compare")
	}

	unrelatedA, unrelatedB, ok := findPhoneticCollision(enc, []string{
		"smith", "schmidt", "jackson", "johnson", "donovan", "davenport", "alvarez", "alvares",
	})
	if !ok {
		t.Skip("no coincidental phonetic collision found in the unrelated-name pool")
	}

	relatedScore := smetrics.JaroWinkler(relatedA, relatedB, 0.7, 4)
	unrelatedScore := smetrics.JaroWinkler(unrelatedA, unrelatedB, 0.7, 4)

	if relatedScore <= unrelatedScore {
		t.Errorf("Jaro-Winkler(%q,%q)=%.3f should exceed Jaro-Winkler(%q,%q)=%.3f: "+
			"a transliteration variant should read as more similar than a coincidental phonetic collision",
			relatedA, relatedB, relatedScore, unrelatedA, unrelatedB, unrelatedScore)
	}
}

func shareKey(enc Encoder, a, b string) bool {
	ka, kb := enc.Encode(a), enc.Encode(b)
	if len(ka) == 0 || len(kb) == 0 {
		return false
	}
	return ka[0] == kb[0]
}

// findPhoneticCollision returns the first two words in pool that collide
// on their primary phonetic key, standing in for two different subjects
// whose names happen to hash into the same bin.
func findPhoneticCollision(enc Encoder, pool []string) (string, string, bool) {
	seen := make(map[string]string, len(pool))
	for _, w := range pool {
		keys := enc.Encode(w)
		if len(keys) == 0 {
			continue
		}
		if other, ok := seen[keys[0]]; ok {
			return other, w, true
		}
		seen[keys[0]] = w
	}
	return "", "", false
}
