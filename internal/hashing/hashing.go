// Package hashing provides duplicate detection for encoded games.
package hashing

import (
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chesscodec-go/internal/codec"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// PositionHash identifies a position by its placement, side to move,
// castling rights and en-passant target. Clocks do not take part.
type PositionHash [16]byte

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash of the final position
	Hash PositionHash
	// Plies is the number of half-moves in the game
	Plies int
	// Code is the compressed text of the game
	Code string
}

// DuplicateDetector tracks seen games for duplicate detection.
type DuplicateDetector struct {
	// hashTable groups signatures by final position
	hashTable map[PositionHash][]GameSignature
	// byPosition treats games reaching the same final position as duplicates
	byPosition bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector. By default two
// games are duplicates only when their compressed texts are identical; with
// byPosition set, any two games ending in the same position are.
func NewDuplicateDetector(byPosition bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[PositionHash][]GameSignature),
		byPosition: byPosition,
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(code string, game *codec.Game) (bool, error) {
	sig, err := Sign(code, game)
	if err != nil {
		return false, err
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true, nil
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false, nil
}

// signaturesMatch checks if two game signatures match. The final positions
// already agree.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if d.byPosition {
		return true
	}
	return a.Plies == b.Plies && a.Code == b.Code
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[PositionHash][]GameSignature)
	d.duplicateCount = 0
}

// Sign builds the signature of a decoded game.
func Sign(code string, game *codec.Game) (GameSignature, error) {
	hash, err := HashFEN(game.Final.FEN())
	if err != nil {
		return GameSignature{}, err
	}
	return GameSignature{Hash: hash, Plies: len(game.Records), Code: code}, nil
}

// HashFEN hashes the position described by fen. The half-move clock and
// move number are replaced before hashing so that transpositions reached
// at different points of a game compare equal.
func HashFEN(fen string) (PositionHash, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return PositionHash{}, errors.Newf(errors.ErrIllegalFormat, "FEN %q has %d fields, want at least 4", fen, len(fields))
	}
	opt, err := notnil.FEN(strings.Join(fields[:4], " ") + " 0 1")
	if err != nil {
		return PositionHash{}, errors.Wrapf(errors.ErrIllegalFormat, "FEN %q: %v", fen, err)
	}
	return PositionHash(notnil.NewGame(opt).Position().Hash()), nil
}
