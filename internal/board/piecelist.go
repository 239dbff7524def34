package board

// maxPiecesPerList bounds how many pieces of one (color, type) can exist at
// once. All eight pawns promoting to the same piece type, on top of the two
// starting pieces of that type, tops out at exactly 10, so 10 is enough.
const maxPiecesPerList = 10

// PieceList is an unordered set of squares occupied by pieces of one color
// and type (kings are tracked separately via Board.KingSquare, not in a
// PieceList). It supports O(1) add, remove, and move by keeping a dense
// array of squares alongside an inverse square-to-slot index, so a removal
// is a swap with the last element rather than a scan.
type PieceList struct {
	squares [maxPiecesPerList]Square
	slotOf  [64]int8 // slotOf[sq] = index into squares, valid only while sq is present
	count   int
}

// Add inserts sq into the list. The caller must ensure sq is not already
// present.
func (pl *PieceList) Add(sq Square) {
	pl.slotOf[sq] = int8(pl.count)
	pl.squares[pl.count] = sq
	pl.count++
}

// Remove deletes sq from the list in O(1) by swapping in the last slot.
// The caller must ensure sq is present.
func (pl *PieceList) Remove(sq Square) {
	slot := pl.slotOf[sq]
	last := pl.count - 1
	movedSq := pl.squares[last]
	pl.squares[slot] = movedSq
	pl.slotOf[movedSq] = slot
	pl.count--
}

// MoveSquare relocates a tracked piece from `from` to `to` in place, keeping
// its existing slot.
func (pl *PieceList) MoveSquare(from, to Square) {
	slot := pl.slotOf[from]
	pl.squares[slot] = to
	pl.slotOf[to] = slot
}

// Count returns the number of tracked squares.
func (pl *PieceList) Count() int {
	return pl.count
}

// Squares returns the tracked squares as a slice backed by the list's
// internal array. Order is unspecified.
func (pl *PieceList) Squares() []Square {
	return pl.squares[:pl.count]
}

// pieceListSlot maps a non-king PieceType to its index (0-4) in
// Board.Lists[color].
func pieceListSlot(pt PieceType) int {
	return int(pt) - int(Pawn)
}
