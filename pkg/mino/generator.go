package mino

import "math/rand"

// Generator decides which piece type spawns next.
type Generator interface {
	Next() PieceType
	Peek() PieceType
}

// Random draws every piece type with equal probability. Equal seeds yield
// equal sequences. Not safe for concurrent use.
type Random struct {
	rng  *rand.Rand
	next PieceType
}

func NewRandom(seed int64) *Random {
	r := &Random{rng: rand.New(rand.NewSource(seed))}
	r.next = r.draw()

	return r
}

func (r *Random) draw() PieceType {
	return PieceType(r.rng.Intn(int(pieceTypeCount)))
}

func (r *Random) Next() PieceType {
	t := r.next
	r.next = r.draw()

	return t
}

func (r *Random) Peek() PieceType {
	return r.next
}

// Bag deals every piece type once, in shuffled order, before reshuffling.
// Not safe for concurrent use.
type Bag struct {
	Pieces []PieceType

	rng *rand.Rand
	i   int
}

func NewBag(seed int64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(seed))}
	b.shuffle()

	return b
}

func (b *Bag) Next() PieceType {
	t := b.Pieces[b.i]
	if b.i == len(b.Pieces)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return t
}

func (b *Bag) Peek() PieceType {
	return b.Pieces[b.i]
}

func (b *Bag) shuffle() {
	b.Pieces = AllPieceTypes()

	b.rng.Shuffle(len(b.Pieces), func(i, j int) { b.Pieces[i], b.Pieces[j] = b.Pieces[j], b.Pieces[i] })
}
