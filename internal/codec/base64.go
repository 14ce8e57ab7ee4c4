// Package codec compresses a move sequence into URL-safe base64 text and
// back. Every square is one character of the alphabet (value = rank*8 +
// file). A ply is written as its destination alone when the position leaves
// exactly one piece of the side to move able to reach it, otherwise as
// origin followed by destination. Promotions append the promotion letter.
// Castling is always written as the king's square followed by its rook's.
package codec

import (
	"fmt"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Alphabet is the URL-safe base64 alphabet; the character at index i
// stands for square i.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var squareOf = func() [256]chess.Square {
	var table [256]chess.Square
	for i := range table {
		table[i] = chess.NoSquare
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = chess.Square(i)
	}
	return table
}()

// SquareChar returns the alphabet character for sq.
func SquareChar(sq chess.Square) byte {
	if !sq.IsValid() {
		panic(fmt.Sprintf("codec: no character for square %s", sq))
	}
	return Alphabet[sq]
}

// CharSquare returns the square for an alphabet character.
func CharSquare(c byte) (chess.Square, error) {
	sq := squareOf[c]
	if sq == chess.NoSquare {
		return chess.NoSquare, fmt.Errorf("character %q is not URL-safe base64: %w", c, errors.ErrIllegalFormat)
	}
	return sq, nil
}

// Validate checks that text consists only of alphabet characters.
func Validate(text string) error {
	for i := 0; i < len(text); i++ {
		if squareOf[text[i]] == chess.NoSquare {
			return errors.Newf(errors.ErrIllegalFormat, "character %q at offset %d is not URL-safe base64", text[i], i)
		}
	}
	return nil
}
