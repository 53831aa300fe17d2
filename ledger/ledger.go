package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"github.com/synergylabs/auditchain/model"
	"github.com/synergylabs/auditchain/utils"
)

var (
	// ErrMiningInvalid reports that a freshly mined block failed
	// validation against the head it extends. With a correct miner this
	// is unreachable; it indicates an internal-consistency fault and is
	// never retried silently.
	ErrMiningInvalid = errors.New("mining produced an invalid block")
	// ErrWriterBusy reports that another append or import holds the
	// writer. Only TryAppend surfaces it; Append queues instead.
	ErrWriterBusy = errors.New("another append or import is in flight")
)

// Ledger is the append-only, tamper-evident audit log. Every recorded
// event becomes a payload-bearing block chained by hash and gated by
// proof of work. A single writer mutates the chain; readers run
// concurrently with each other and with an in-flight mining attempt.
type Ledger struct {
	// writer serializes appends and imports end to end, mining included.
	// Two concurrent appends against the same head would both produce
	// plausible blocks claiming the same previousHash.
	writer sync.Mutex
	// mu guards blocks at the commit point and for readers.
	mu         sync.RWMutex
	blocks     []model.Block
	difficulty int

	log zerolog.Logger
	id  string
}

// New constructs a ledger with a fixed difficulty, seeded with its
// genesis block.
func New(difficulty int, log zerolog.Logger) (*Ledger, error) {
	if difficulty < 0 {
		return nil, fmt.Errorf("difficulty must be non-negative, got %d", difficulty)
	}
	genesis, err := utils.CreateGenesisBlock()
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		blocks:     []model.Block{*genesis},
		difficulty: difficulty,
		id:         uuid.NewV4().String(),
	}
	l.log = log.With().Str("ledger", l.id).Logger()
	l.log.Info().Int("difficulty", difficulty).Str("genesis", genesis.Hash).Msg("ledger created")
	return l, nil
}

// Difficulty returns the proof-of-work difficulty fixed at construction.
func (l *Ledger) Difficulty() int {
	return l.difficulty
}

// Append mines a block carrying data onto the current head and commits
// it, returning the new block's index. Appends queue behind any other
// in-flight append or import. Mining runs outside the read lock so
// queries stay live; ctx aborts the nonce search, and cancellation
// before commit leaves the chain untouched.
func (l *Ledger) Append(ctx context.Context, data model.Document) (int64, error) {
	l.writer.Lock()
	defer l.writer.Unlock()
	return l.appendLocked(ctx, data)
}

// TryAppend is the non-blocking variant of Append: when another append
// or import is in flight it fails fast with ErrWriterBusy instead of
// queueing.
func (l *Ledger) TryAppend(ctx context.Context, data model.Document) (int64, error) {
	if !l.writer.TryLock() {
		return 0, ErrWriterBusy
	}
	defer l.writer.Unlock()
	return l.appendLocked(ctx, data)
}

func (l *Ledger) appendLocked(ctx context.Context, data model.Document) (int64, error) {
	normalized, err := data.Normalize()
	if err != nil {
		return 0, fmt.Errorf("payload is not serializable: %w", err)
	}

	l.mu.RLock()
	head := l.blocks[len(l.blocks)-1]
	l.mu.RUnlock()

	block, err := utils.Mine(ctx, head.Index+1, normalized, head.Hash, l.difficulty)
	if err != nil {
		return 0, err
	}
	if err := utils.CheckLink(block, &head, l.difficulty); err != nil {
		l.log.Error().Err(err).Int64("index", block.Index).Msg("mined block failed validation, refusing to commit")
		return 0, fmt.Errorf("%w: %v", ErrMiningInvalid, err)
	}

	l.mu.Lock()
	l.blocks = append(l.blocks, *block)
	l.mu.Unlock()

	l.log.Info().
		Int64("index", block.Index).
		Int64("nonce", block.Nonce).
		Str("hash", block.Hash).
		Str("type", normalized.Type()).
		Msg("block appended")
	return block.Index, nil
}

// Query returns copies of all blocks, oldest first, whose payload
// satisfies pred. No matches yields an empty slice, never an error.
func (l *Ledger) Query(pred func(model.Document) bool) []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	found := []model.Block{}
	for i := range l.blocks {
		if pred(l.blocks[i].Data) {
			found = append(found, copyBlock(l.blocks[i]))
		}
	}
	return found
}

// QueryByType filters on the conventional "type" payload field.
func (l *Ledger) QueryByType(tag string) []model.Block {
	return l.Query(func(d model.Document) bool { return d.Type() == tag })
}

// Head returns a copy of the newest block.
func (l *Ledger) Head() model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyBlock(l.blocks[len(l.blocks)-1])
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// IsValid recomputes whole-chain validity. Nothing is cached, so any
// out-of-band tampering shows up on the next call.
func (l *Ledger) IsValid() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return utils.ValidChain(l.blocks, l.difficulty)
}

// copyBlock deep-copies a committed block so callers can never alias the
// live payload maps.
func copyBlock(b model.Block) model.Block {
	var out model.Block
	if err := copier.CopyWithOption(&out, &b, copier.Option{DeepCopy: true}); err != nil {
		// Blocks are plain data; a copy failure would be a programming
		// error in the model types.
		panic(err)
	}
	return out
}
