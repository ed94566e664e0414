package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/nightreef/internal/engine/motion"
	"github.com/Faultbox/nightreef/pkg/math"
)

func TestKind_String(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("dolphin")
	assert.False(t, ok)
	assert.Equal(t, "unknown", KindCount.String())
}

func TestKind_Predicates(t *testing.T) {
	assert.True(t, ReefShark.Swims())
	assert.False(t, Hammerhead.Swims())
	assert.False(t, WhiteTip.Swims())
	assert.False(t, Boat.IsCreature())
	for _, k := range Creatures {
		assert.True(t, k.IsCreature(), k.String())
	}
}

func TestCompose_ZeroOffsets(t *testing.T) {
	base := DefaultBases()[Hammerhead]
	assert.Equal(t, base, Compose(base, Offsets{}))
}

func TestCompose_ForwardScaledByBase(t *testing.T) {
	base := math.Scale(0.1, 0.1, 0.1)
	m := Compose(base, Offsets{Forward: 10})
	assert.InDelta(t, 1, m.Translation().Z, 1e-6)
}

func TestCreatureOffsets_Signs(t *testing.T) {
	j := motion.DefaultJump()
	tm := float32(0.3)

	reef := CreatureOffsets(ReefShark, j, tm, 5)
	hammer := CreatureOffsets(Hammerhead, j, tm, 5)

	assert.InDelta(t, -reef.Bob, hammer.Bob, 1e-6)
	assert.InDelta(t, -reef.TiltDeg, hammer.TiltDeg, 1e-6)
	assert.Equal(t, float32(5), reef.Forward)
	assert.Equal(t, float32(5), hammer.Forward)

	// At t=0 the white-tip is a quarter cycle ahead: full dip, no tilt
	white := CreatureOffsets(WhiteTip, j, 0, 0)
	assert.InDelta(t, -0.25, white.Bob, 1e-6)
	assert.InDelta(t, 0, white.TiltDeg, 1e-5)

	boat := CreatureOffsets(Boat, j, tm, 3)
	assert.Equal(t, Offsets{Forward: 3}, boat)
}

func TestDefaultBases_Positions(t *testing.T) {
	b := DefaultBases()
	p := b[ReefShark].Translation()
	assert.InDelta(t, 0.05, p.X, 1e-6)
	assert.InDelta(t, 0.01, p.Y, 1e-6)

	boat := b[Boat].Translation()
	assert.NotEqual(t, math.Vec3{}, boat)
}
