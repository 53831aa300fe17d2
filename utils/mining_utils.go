package utils

import (
	"context"
	"time"

	"github.com/synergylabs/auditchain/model"
)

// How many nonce values to try between cancellation checks.
const miningBatch = 4096

// Mine searches nonces from 0 upward for the first digest satisfying the
// difficulty predicate and returns the finished block. The timestamp is
// captured once, before the search. Mining is CPU bound and unbounded for
// large difficulties; ctx is the only way out, and cancelling returns
// ctx.Err() without producing a block.
func Mine(ctx context.Context, index int64, data model.Document, prevHash string, difficulty int) (*model.Block, error) {
	timestamp := time.Now().UTC()
	for nonce := int64(0); ; nonce++ {
		if nonce%miningBatch == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		hash, err := BlockHash(index, timestamp, data, prevHash, nonce)
		if err != nil {
			return nil, err
		}
		if HasLeadingHexZeros(hash, difficulty) {
			return &model.Block{
				Index:     index,
				Timestamp: timestamp,
				Data:      data,
				PrevHash:  prevHash,
				Hash:      hash,
				Nonce:     nonce,
			}, nil
		}
	}
}

// CreateGenesisBlock assembles the chain's bootstrap block directly at
// nonce 0, skipping the proof-of-work search on purpose: validation treats
// index 0 as exempt from the difficulty predicate.
func CreateGenesisBlock() (*model.Block, error) {
	data := model.Document{
		model.TypeKey: "genesis",
		"note":        "audit ledger genesis",
	}
	timestamp := time.Now().UTC()
	hash, err := BlockHash(0, timestamp, data, model.GenesisPrevHash, 0)
	if err != nil {
		return nil, err
	}
	return &model.Block{
		Index:     0,
		Timestamp: timestamp,
		Data:      data,
		PrevHash:  model.GenesisPrevHash,
		Hash:      hash,
		Nonce:     0,
	}, nil
}
