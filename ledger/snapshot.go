package ledger

import (
	"fmt"

	"github.com/synergylabs/auditchain/model"
	"github.com/synergylabs/auditchain/utils"
)

// Export returns the whole chain in its canonical serialized form. The
// blocks are deep copies, safe to hand to serializers or other goroutines.
func (l *Ledger) Export() model.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	chain := make([]model.Block, 0, len(l.blocks))
	for i := range l.blocks {
		chain = append(chain, copyBlock(l.blocks[i]))
	}
	return model.Snapshot{Chain: chain, Difficulty: l.difficulty}
}

// Import validates snap and, only on success, replaces the live chain
// wholesale. Any rejection leaves the ledger untouched: no merge, no
// partial state. Imports queue behind in-flight appends.
//
// The failure reason wraps one of utils.ErrSchemaInvalid,
// utils.ErrChainDiscontinuous, utils.ErrHashMismatch or
// utils.ErrPowNotSatisfied.
func (l *Ledger) Import(snap model.Snapshot) error {
	l.writer.Lock()
	defer l.writer.Unlock()

	// Difficulty is fixed at construction; a snapshot mined under a
	// different difficulty cannot extend or replace this ledger.
	if snap.Difficulty != l.difficulty {
		return fmt.Errorf("%w: snapshot difficulty %d, ledger difficulty %d",
			utils.ErrSchemaInvalid, snap.Difficulty, l.difficulty)
	}
	if err := utils.CheckChain(snap.Chain, l.difficulty); err != nil {
		l.log.Warn().Err(err).Int("blocks", len(snap.Chain)).Msg("import rejected")
		return err
	}

	chain := make([]model.Block, 0, len(snap.Chain))
	for i := range snap.Chain {
		chain = append(chain, copyBlock(snap.Chain[i]))
	}

	l.mu.Lock()
	replaced := len(l.blocks)
	l.blocks = chain
	l.mu.Unlock()

	l.log.Info().Int("blocks", len(chain)).Int("replaced", replaced).Msg("chain imported")
	return nil
}
