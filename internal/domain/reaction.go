package domain

import (
	"encoding/json"
	"math"
	"slices"
)

type ReactionKind string

const (
	ReactionLike  ReactionKind = "like"
	ReactionLove  ReactionKind = "love"
	ReactionWow   ReactionKind = "wow"
	ReactionProud ReactionKind = "proud"
)

var ReactionKinds = []ReactionKind{ReactionLike, ReactionLove, ReactionWow, ReactionProud}

func (k ReactionKind) Valid() bool {
	return slices.Contains(ReactionKinds, k)
}

// Reactions maps reaction kinds to their counts.
type Reactions map[ReactionKind]int

// DecodeReactions parses the stored JSON document. Every known kind is present in the result,
// defaulting to zero; unparseable documents yield all zeros. Counts written by MySQL arithmetic
// may be stored as floats (2.0), so values are decoded as numbers and truncated.
func DecodeReactions(raw []byte) Reactions {
	reactions := Reactions{}
	for _, k := range ReactionKinds {
		reactions[k] = 0
	}
	if len(raw) == 0 {
		return reactions
	}

	var stored map[ReactionKind]json.RawMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		return reactions
	}
	for k, v := range stored {
		var count float64
		if err := json.Unmarshal(v, &count); err != nil || count < 0 || math.IsNaN(count) {
			continue
		}
		reactions[k] = int(min(count, math.MaxInt32))
	}
	return reactions
}

// ReactionChange is the counter adjustment produced by a reader switching reactions.
type ReactionChange struct {
	Increment *ReactionKind
	Decrement *ReactionKind
}

func (c ReactionChange) Empty() bool {
	return c.Increment == nil && c.Decrement == nil
}

// NewReactionChange works out which counters move when a reader goes from oldReaction to
// newReaction. A nil newReaction means the reader withdrew their reaction.
func NewReactionChange(newReaction, oldReaction *ReactionKind) (ReactionChange, error) {
	if newReaction != nil && !newReaction.Valid() {
		return ReactionChange{}, ErrInvalidReaction
	}

	var change ReactionChange
	if newReaction != nil && (oldReaction == nil || *newReaction != *oldReaction) {
		change.Increment = newReaction
	}
	if oldReaction != nil && oldReaction.Valid() && (newReaction == nil || *oldReaction != *newReaction) {
		change.Decrement = oldReaction
	}
	return change, nil
}
