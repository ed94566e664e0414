package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/lighting"
	"github.com/Faultbox/nightreef/internal/engine/mesh"
	"github.com/Faultbox/nightreef/internal/engine/motion"
	"github.com/Faultbox/nightreef/internal/engine/scene/shaders"
	"github.com/Faultbox/nightreef/pkg/math"
)

// CreatureRenderer draws the three creatures from one shared buffer.
type CreatureRenderer struct {
	dev  gfx.Device
	prog program
	u    creatureUniforms

	buf    gfx.BufferID
	layout gfx.Layout
	ranges [actor.KindCount]mesh.Range

	profile motion.SwimProfile
}

// NewCreatureRenderer links the creature program.
func NewCreatureRenderer(dev gfx.Device, log *zap.Logger) *CreatureRenderer {
	cr := &CreatureRenderer{dev: dev}
	cr.prog = link(dev, log, "creature", shaders.CreatureVertexShader, shaders.CreatureFragmentShader)
	if cr.prog.ok() {
		cr.u = newCreatureUniforms(locator{dev: dev, log: log, p: cr.prog})
	}
	return cr
}

// Load uploads the creature meshes, indexed by kind. The swim profile is
// derived from the reef shark's bounds.
func (cr *CreatureRenderer) Load(meshes map[actor.Kind]mesh.Batch) error {
	batches := make([]mesh.Batch, 0, len(actor.Creatures))
	for _, k := range actor.Creatures {
		batches = append(batches, meshes[k])
	}
	cb := mesh.BuildCreatureBuffer(batches...)
	if len(cb.Data) == 0 {
		return fmt.Errorf("creatures: no geometry")
	}

	buf, err := cr.dev.UploadBuffer(cb.Data)
	if err != nil {
		return fmt.Errorf("creatures: %w", err)
	}
	cr.buf = buf
	cr.layout = gfx.Layout{
		{Location: 0, Size: 3},
		{Location: 1, Size: 3, Offset: cb.NormalOffset},
		{Location: 2, Size: 3, Offset: cb.ColorOffset},
	}
	for i, k := range actor.Creatures {
		cr.ranges[k] = cb.Ranges[i]
		if k.Swims() {
			b := cb.Bounds[i]
			cr.profile = motion.ProfileFromBounds(b.Min, b.Max)
		}
	}
	return nil
}

// Profile returns the swim profile uploaded with the reef shark.
func (cr *CreatureRenderer) Profile() motion.SwimProfile {
	return cr.profile
}

func (cr *CreatureRenderer) ready() bool {
	return cr.prog.ok() && cr.buf != 0
}

// Render draws the reef shark, white-tip and hammerhead in that order.
func (cr *CreatureRenderer) Render(st *RenderState, viewProj math.Mat4, eye math.Vec3, light lighting.Directional) {
	if !cr.ready() {
		return
	}
	dev := cr.dev
	dev.UseProgram(cr.prog.id)
	cr.u.lightUniforms.set(dev, light, lighting.Creature, eye)

	dev.SetFloat(cr.u.time, st.Clock.Elapsed)
	dev.SetVec4(cr.u.wave, st.Swim.Vec4())
	dev.SetVec2(cr.u.bounds, cr.profile.MinAlong, cr.profile.InvRangeAlong)
	dev.SetVec3(cr.u.longMask, cr.profile.LongMask.Array())
	dev.SetVec3(cr.u.latMask, cr.profile.LatMask.Array())

	for _, k := range [...]actor.Kind{actor.ReefShark, actor.WhiteTip, actor.Hammerhead} {
		r := cr.ranges[k]
		if r.Count == 0 {
			continue
		}
		swim := int32(0)
		if k.Swims() {
			swim = 1
		}
		dev.SetInt(cr.u.swimEnable, swim)
		cr.u.transformUniforms.set(dev, st.Model(k), viewProj)
		dev.Draw(cr.buf, cr.layout, r.First, r.Count)
	}
}
