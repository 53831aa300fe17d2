package model

import "time"

// GenesisPrevHash is the sentinel previous hash of the first block.
const GenesisPrevHash = "0"

// Block is a single immutable entry of the audit ledger.
type Block struct {
	// Position in the chain. Genesis is 0.
	Index int64 `json:"index"`
	// Creation instant, captured once per mining attempt and never
	// resampled per nonce trial.
	Timestamp time.Time `json:"timestamp"`
	// Collaborator-supplied event payload. Opaque to the ledger.
	Data Document `json:"data"`
	// Hex digest of the previous block, or "0" for genesis.
	PrevHash string `json:"previousHash"`
	// Hex digest over (index, timestamp, data, previousHash, nonce).
	Hash string `json:"hash"`
	// The proof-of-work search counter.
	Nonce int64 `json:"nonce"`
}

// IsGenesis reports whether b sits at the chain's bootstrap position.
func (b *Block) IsGenesis() bool {
	return b.Index == 0 && b.PrevHash == GenesisPrevHash
}
