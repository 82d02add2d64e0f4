package render3d

import (
	"sort"

	"github.com/1siamBot/tripod-arena/engine/core"
)

// SceneEntity is the display state of one spawned entity
type SceneEntity struct {
	Kind  core.EntityKind
	Looks map[core.Part]core.Look
}

// Scene records what the simulation wants shown. It holds no geometry;
// the renderer pairs it with world positions each frame.
type Scene struct {
	entities map[core.EntityID]*SceneEntity
	beams    map[core.EntityID]core.Beam
}

func NewScene() *Scene {
	return &Scene{
		entities: make(map[core.EntityID]*SceneEntity),
		beams:    make(map[core.EntityID]core.Beam),
	}
}

func (s *Scene) Spawn(id core.EntityID, kind core.EntityKind) {
	s.entities[id] = &SceneEntity{Kind: kind, Looks: make(map[core.Part]core.Look)}
}

func (s *Scene) Remove(id core.EntityID) {
	delete(s.entities, id)
	delete(s.beams, id)
}

// SetLook is ignored for entities that were never spawned
func (s *Scene) SetLook(id core.EntityID, part core.Part, look core.Look) {
	if e, ok := s.entities[id]; ok {
		e.Looks[part] = look
	}
}

func (s *Scene) SetBeam(id core.EntityID, beam core.Beam) {
	if _, ok := s.entities[id]; ok {
		s.beams[id] = beam
	}
}

func (s *Scene) ClearBeam(id core.EntityID) {
	delete(s.beams, id)
}

// Look returns the current look of a part, zero if none was set
func (s *Scene) Look(id core.EntityID, part core.Part) core.Look {
	if e, ok := s.entities[id]; ok {
		return e.Looks[part]
	}
	return core.Look{}
}

func (s *Scene) Entity(id core.EntityID) (*SceneEntity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Beams returns active beams ordered by owner id
func (s *Scene) Beams() []core.Beam {
	ids := make([]core.EntityID, 0, len(s.beams))
	for id := range s.beams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]core.Beam, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.beams[id])
	}
	return out
}

func (s *Scene) Len() int { return len(s.entities) }

// Reset drops everything, e.g. before a new match
func (s *Scene) Reset() {
	s.entities = make(map[core.EntityID]*SceneEntity)
	s.beams = make(map[core.EntityID]core.Beam)
}
