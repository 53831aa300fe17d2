package utils

import (
	"errors"
	"fmt"

	"github.com/synergylabs/auditchain/model"
)

// Validation failure reasons. CheckLink and CheckChain wrap these so
// callers can discriminate with errors.Is.
var (
	// ErrSchemaInvalid rejects candidate chains that are structurally
	// unusable before any block-level check runs.
	ErrSchemaInvalid = errors.New("chain schema invalid")
	// ErrChainDiscontinuous rejects broken linkage: bad index sequence,
	// previousHash not matching the parent, or a malformed genesis.
	ErrChainDiscontinuous = errors.New("chain discontinuous")
	// ErrHashMismatch rejects blocks whose stored hash differs from the
	// digest recomputed over their own fields.
	ErrHashMismatch = errors.New("block hash mismatch")
	// ErrPowNotSatisfied rejects non-genesis blocks whose hash misses the
	// required leading zeros.
	ErrPowNotSatisfied = errors.New("proof of work not satisfied")
)

// CheckLink verifies the pair invariants for block b following prev.
// prev may be nil for the genesis block, which skips the linkage and
// proof-of-work checks but still must hash correctly.
func CheckLink(b, prev *model.Block, difficulty int) error {
	if prev != nil {
		if b.Index != prev.Index+1 {
			return fmt.Errorf("%w: block %d follows index %d", ErrChainDiscontinuous, b.Index, prev.Index)
		}
		if b.PrevHash != prev.Hash {
			return fmt.Errorf("%w: block %d previousHash does not match parent", ErrChainDiscontinuous, b.Index)
		}
	}
	recomputed, err := RecomputeHash(b)
	if err != nil {
		return fmt.Errorf("%w: block %d payload not hashable: %v", ErrHashMismatch, b.Index, err)
	}
	if recomputed != b.Hash {
		return fmt.Errorf("%w: block %d", ErrHashMismatch, b.Index)
	}
	if prev != nil && !HasLeadingHexZeros(b.Hash, difficulty) {
		return fmt.Errorf("%w: block %d lacks %d leading zeros", ErrPowNotSatisfied, b.Index, difficulty)
	}
	return nil
}

// ValidLink is the boolean form of CheckLink.
func ValidLink(b, prev *model.Block, difficulty int) bool {
	return CheckLink(b, prev, difficulty) == nil
}

// CheckChain validates a whole candidate chain: exactly one well-formed
// genesis in front, then every consecutive pair passing CheckLink.
func CheckChain(chain []model.Block, difficulty int) error {
	if len(chain) == 0 {
		return fmt.Errorf("%w: chain is empty", ErrSchemaInvalid)
	}
	genesis := &chain[0]
	if !genesis.IsGenesis() {
		return fmt.Errorf("%w: first block is not a genesis block", ErrChainDiscontinuous)
	}
	if err := CheckLink(genesis, nil, difficulty); err != nil {
		return err
	}
	for i := 1; i < len(chain); i++ {
		if err := CheckLink(&chain[i], &chain[i-1], difficulty); err != nil {
			return err
		}
	}
	return nil
}

// ValidChain is the boolean form of CheckChain.
func ValidChain(chain []model.Block, difficulty int) bool {
	return CheckChain(chain, difficulty) == nil
}
