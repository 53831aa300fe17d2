package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/synergylabs/auditchain/model"
)

// encMode emits deterministic CBOR: definite lengths, sorted map keys,
// shortest-form numbers. Identical values always produce identical bytes.
var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
}

// BlockHash computes the lowercase hex SHA-256 digest over the five hashed
// block fields. Pure and deterministic: the pre-image is the canonical
// CBOR encoding of the tuple, with the timestamp rendered as RFC 3339 UTC
// so the digest survives serialization round trips.
func BlockHash(index int64, timestamp time.Time, data model.Document, prevHash string, nonce int64) (string, error) {
	preimage, err := encMode.Marshal([]interface{}{
		index,
		timestamp.UTC().Format(time.RFC3339Nano),
		data,
		prevHash,
		nonce,
	})
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(preimage)
	return hex.EncodeToString(digest[:]), nil
}

// RecomputeHash re-derives the digest of b from its own fields.
func RecomputeHash(b *model.Block) (string, error) {
	return BlockHash(b.Index, b.Timestamp, b.Data, b.PrevHash, b.Nonce)
}

// HasLeadingHexZeros reports whether hash carries at least difficulty
// leading '0' characters.
func HasLeadingHexZeros(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	if len(hash) < difficulty {
		return false
	}
	for i := 0; i < difficulty; i++ {
		if hash[i] != '0' {
			return false
		}
	}
	return true
}
