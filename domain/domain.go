package domain

import (
	"math/bits"
	"math/rand"
)

// MaxTileTypes is the largest tile catalogue a Domain can represent. The
// catalogue is a fixed-width bitmask, so N must fit in the mask's width.
const MaxTileTypes = 32

// TileType is an opaque small-integer ordinal identifying one tile variant.
// The catalogue of valid ordinals (and the names behind them) is supplied
// by an external collaborator (see the tiledata package); the core treats
// TileType purely as a bit position.
type TileType uint8

// Domain is a fixed-width bitmask set over TileType, with cardinality
// ("entropy") at most MaxTileTypes. The zero value is the empty set.
//
// Domain is a value type: every mutating-looking operation returns a new
// Domain rather than modifying the receiver in place, so callers compose
// them the way the reference implementation composes its Copy-typed bitset
// (d = d.Intersect(allowed)).
type Domain uint32

// Empty returns the empty Domain.
func Empty() Domain {
	return 0
}

// FromList builds the union of the single-tile masks for each TileType in
// types. Duplicate entries are harmless (union is idempotent).
func FromList(types []TileType) Domain {
	var d Domain
	for _, t := range types {
		d = d.Insert(t)
	}
	return d
}

// mask returns the single-bit Domain naming only t.
func mask(t TileType) Domain {
	return Domain(1) << uint(t)
}

// Union returns a | b.
func (d Domain) Union(other Domain) Domain {
	return d | other
}

// Intersect returns a & b.
func (d Domain) Intersect(other Domain) Domain {
	return d & other
}

// Difference returns the members of d that are not in other (a & ^b).
func (d Domain) Difference(other Domain) Domain {
	return d &^ other
}

// Xor returns the symmetric difference of d and other.
func (d Domain) Xor(other Domain) Domain {
	return d ^ other
}

// Contains reports whether t is a member of d.
func (d Domain) Contains(t TileType) bool {
	return d&mask(t) != 0
}

// Insert returns d with t added.
func (d Domain) Insert(t TileType) Domain {
	return d | mask(t)
}

// Remove returns d with t removed (a no-op if t was already absent).
func (d Domain) Remove(t TileType) Domain {
	return d &^ mask(t)
}

// Entropy returns the cardinality of d (its popcount).
func (d Domain) Entropy() int {
	return bits.OnesCount32(uint32(d))
}

// IsEmpty reports whether d has no members.
func (d Domain) IsEmpty() bool {
	return d == 0
}

// AsSingle returns the sole member of d and true iff Entropy() == 1.
// For any other cardinality (including zero) it returns (0, false).
func (d Domain) AsSingle() (TileType, bool) {
	if d == 0 || d&(d-1) != 0 {
		// Zero members, or more than one bit set.
		return 0, false
	}
	return TileType(bits.TrailingZeros32(uint32(d))), true
}

// RandomMember draws a uniformly random member of d using rng, or returns
// (0, false) if d is empty. It draws k in [0, entropy) and then isolates
// the k-th set bit by clearing the lowest set bit k times and taking the
// new lowest bit, exactly as the reference bitset does.
func (d Domain) RandomMember(rng *rand.Rand) (TileType, bool) {
	entropy := d.Entropy()
	if entropy == 0 {
		return 0, false
	}
	k := rng.Intn(entropy)
	remaining := uint32(d)
	for i := 0; i < k; i++ {
		remaining &= remaining - 1 // clear the lowest set bit
	}
	return TileType(bits.TrailingZeros32(remaining)), true
}

// Members returns every TileType in d, in ascending ordinal order, each
// appearing exactly once. O(entropy).
func (d Domain) Members() []TileType {
	out := make([]TileType, 0, d.Entropy())
	remaining := uint32(d)
	for remaining != 0 {
		lowest := remaining & -remaining
		out = append(out, TileType(bits.TrailingZeros32(lowest)))
		remaining &= remaining - 1
	}
	return out
}
