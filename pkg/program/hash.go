package program

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// hashEntry is the canonical per-item view used for deduplication. The
// seed, IDs and display text are deliberately excluded: two arrangements
// that order the same performances the same way are duplicates no matter
// which seed produced them.
type hashEntry struct {
	Kind    Kind     `json:"kind"`
	Actors  []string `json:"actors"`
	Special bool     `json:"kv"`
}

// ContentHash returns a stable hex digest of an item sequence, suitable
// for detecting duplicate arrangements across variant runs.
func ContentHash(items []Item) string {
	entries := make([]hashEntry, len(items))
	for i, it := range items {
		actors := make([]string, 0, len(it.Actors))
		for _, name := range it.ActorNames() {
			actors = append(actors, strings.ToLower(name))
		}
		sort.Strings(actors)
		entries[i] = hashEntry{Kind: it.Kind, Actors: actors, Special: it.Special}
	}

	data, _ := json.Marshal(entries)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
