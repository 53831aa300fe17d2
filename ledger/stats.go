package ledger

import "github.com/synergylabs/auditchain/utils"

// Stats describes the ledger at a point in time.
type Stats struct {
	TotalBlocks  int            `json:"totalBlocks"`
	CountsByType map[string]int `json:"countsByType"`
	Difficulty   int            `json:"difficulty"`
	IsValid      bool           `json:"isValid"`
	HeadHash     string         `json:"headHash"`
}

// Stats recomputes chain validity on every call rather than caching it,
// so the result reflects any external tampering.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	counts := map[string]int{}
	for i := range l.blocks {
		if t := l.blocks[i].Data.Type(); t != "" {
			counts[t]++
		}
	}
	return Stats{
		TotalBlocks:  len(l.blocks),
		CountsByType: counts,
		Difficulty:   l.difficulty,
		IsValid:      utils.ValidChain(l.blocks, l.difficulty),
		HeadHash:     l.blocks[len(l.blocks)-1].Hash,
	}
}
