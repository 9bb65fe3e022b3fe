package blocks

import "math/rand/v2"

// Kind identifies one of the seven canonical pieces.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

var kindNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

type template struct {
	shape Shape
	color Color
}

// Templates are never handed out directly; Catalog clones them.
var templates = [...]template{
	KindI: {Shape{{true, true, true, true}}, Cyan},
	KindO: {Shape{{true, true}, {true, true}}, Yellow},
	KindT: {Shape{{false, true, false}, {true, true, true}}, Purple},
	KindS: {Shape{{false, true, true}, {true, true, false}}, Green},
	KindZ: {Shape{{true, true, false}, {false, true, true}}, Red},
	KindJ: {Shape{{true, false, false}, {true, true, true}}, Blue},
	KindL: {Shape{{false, false, true}, {true, true, true}}, Orange},
}

// Kinds returns every piece kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(templates))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Random is the source of randomness used to pick pieces.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// Catalog produces freshly positioned pieces.
type Catalog struct {
	rand   Random
	spawn  Point
	useBag bool
	bag    []Kind
}

// NewCatalog creates a catalog that spawns pieces at cfg.Spawn. A nil
// Random falls back to the math/rand/v2 global source.
func NewCatalog(cfg Config, r Random) *Catalog {
	if r == nil {
		r = globalRandom{}
	}
	return &Catalog{
		rand:   r,
		spawn:  cfg.Spawn,
		useBag: cfg.Randomizer == RandomizerBag,
	}
}

// Piece returns a new piece of the given kind at the spawn point.
func (c *Catalog) Piece(kind Kind) *Piece {
	t := templates[kind]
	return &Piece{
		Kind:   kind,
		Shape:  t.shape.Clone(),
		Color:  t.color,
		Origin: c.spawn,
	}
}

// RandomPiece returns a new randomly chosen piece at the spawn point.
func (c *Catalog) RandomPiece() *Piece {
	return c.Piece(c.nextKind())
}

// Reset discards any partially drawn bag.
func (c *Catalog) Reset() {
	c.bag = c.bag[:0]
}

func (c *Catalog) nextKind() Kind {
	if !c.useBag {
		return Kind(c.rand.IntN(len(templates)))
	}

	if len(c.bag) == 0 {
		c.bag = append(c.bag[:0], Kinds()...)
		for i := len(c.bag) - 1; i > 0; i-- {
			j := c.rand.IntN(i + 1)
			c.bag[i], c.bag[j] = c.bag[j], c.bag[i]
		}
	}

	k := c.bag[0]
	c.bag = c.bag[1:]
	return k
}
