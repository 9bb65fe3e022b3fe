package blocks_test

import (
	"math/rand/v2"
	"testing"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/blocks"
	"github.com/plus3/blockfall/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPiece(t *testing.T) {
	want := map[blocks.Kind]blocks.Color{
		blocks.KindI: blocks.Cyan,
		blocks.KindO: blocks.Yellow,
		blocks.KindT: blocks.Purple,
		blocks.KindS: blocks.Green,
		blocks.KindZ: blocks.Red,
		blocks.KindJ: blocks.Blue,
		blocks.KindL: blocks.Orange,
	}
	catalog := newCatalog()

	for _, kind := range blocks.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			p := catalog.Piece(kind)
			assert.Equal(t, kind, p.Kind)
			assert.Equal(t, want[kind], p.Color)
			assert.Equal(t, blocks.Point{X: 4, Y: 0}, p.Origin)
			assert.LessOrEqual(t, p.Shape.Rows(), 4)
			assert.LessOrEqual(t, p.Shape.Cols(), 4)

			cells := 0
			for range p.Shape.Cells() {
				cells++
			}
			assert.Equal(t, 4, cells)
		})
	}
}

func TestCatalogPiecesDoNotShareShapes(t *testing.T) {
	catalog := newCatalog()
	a := catalog.Piece(blocks.KindL)
	b := catalog.Piece(blocks.KindL)

	a.Shape[0][0] = !a.Shape[0][0]

	assert.False(t, a.Shape.Equal(b.Shape))
	assert.True(t, b.Shape.Equal(catalog.Piece(blocks.KindL).Shape))
}

func TestCatalogRandomPieceUniform(t *testing.T) {
	random := testutil.NewMockRandom(int(blocks.KindS), int(blocks.KindI), int(blocks.KindL))
	catalog := blocks.NewCatalog(blocks.DefaultConfig(), random)

	assert.Equal(t, blocks.KindS, catalog.RandomPiece().Kind)
	assert.Equal(t, blocks.KindI, catalog.RandomPiece().Kind)
	assert.Equal(t, blocks.KindL, catalog.RandomPiece().Kind)
	assert.Equal(t, 0, random.Remaining())
}

func TestCatalogCustomSpawn(t *testing.T) {
	cfg := blocks.DefaultConfig()
	cfg.Spawn = blocks.Point{X: 2, Y: -1}
	catalog := blocks.NewCatalog(cfg, nil)

	assert.Equal(t, blocks.Point{X: 2, Y: -1}, catalog.RandomPiece().Origin)
}

func TestCatalogBag(t *testing.T) {
	cfg := blocks.DefaultConfig()
	cfg.Randomizer = blocks.RandomizerBag
	catalog := blocks.NewCatalog(cfg, rand.New(rand.NewPCG(1, 2)))

	for round := range 5 {
		seen := intmap.New[blocks.Kind, int](7)
		for range 7 {
			k := catalog.RandomPiece().Kind
			n, _ := seen.Get(k)
			seen.Put(k, n+1)
		}
		require.Equal(t, 7, seen.Len(), "round %d", round)
		for _, k := range blocks.Kinds() {
			n, _ := seen.Get(k)
			assert.Equal(t, 1, n, "round %d kind %s", round, k)
		}
	}
}

func TestCatalogBagReset(t *testing.T) {
	cfg := blocks.DefaultConfig()
	cfg.Randomizer = blocks.RandomizerBag
	catalog := blocks.NewCatalog(cfg, testutil.NewMockRandom())

	catalog.RandomPiece()
	catalog.RandomPiece()
	catalog.Reset()

	seen := intmap.New[blocks.Kind, bool](7)
	for range 7 {
		seen.Put(catalog.RandomPiece().Kind, true)
	}
	assert.Equal(t, 7, seen.Len())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*blocks.Config)
		valid  bool
	}{
		{"default", func(*blocks.Config) {}, true},
		{"zero width", func(c *blocks.Config) { c.Width = 0 }, false},
		{"negative height", func(c *blocks.Config) { c.Height = -1 }, false},
		{"spawn outside", func(c *blocks.Config) { c.Spawn.X = 10 }, false},
		{"zero interval", func(c *blocks.Config) { c.TickInterval = 0 }, false},
		{"unknown randomizer", func(c *blocks.Config) { c.Randomizer = "weighted" }, false},
		{"bag randomizer", func(c *blocks.Config) { c.Randomizer = blocks.RandomizerBag }, true},
		{"empty key", func(c *blocks.Config) { c.HighScoreKey = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := blocks.DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, blocks.ErrInvalidConfig)
			}
		})
	}
}
