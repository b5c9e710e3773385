package autoplay

import "github.com/udisondev/autoplay/internal/model"

// CountNearbyHostiles counts live hostiles within radius of p.
func CountNearbyHostiles(sp Spatial, p *model.Player, radius int32) int32 {
	var n int32
	sp.ForEachHostile(p.Location(), radius, func(m *model.Monster) bool {
		if !m.IsDead() {
			n++
		}
		return true
	})
	return n
}

// CountAttackers counts live hostiles within radius whose target is p.
func CountAttackers(sp Spatial, p *model.Player, radius int32) int32 {
	var n int32
	id := p.ObjectID()
	sp.ForEachHostile(p.Location(), radius, func(m *model.Monster) bool {
		if !m.IsDead() && m.Target() == id {
			n++
		}
		return true
	})
	return n
}

// FindNearestTarget expands the search square from 0 to maxRadius and returns the
// first live hostile at the smallest radius that has any.
func FindNearestTarget(sp Spatial, p *model.Player, maxRadius int32) (uint32, bool) {
	center := p.Location()
	for r := int32(0); r <= maxRadius; r++ {
		var found uint32
		sp.ForEachHostile(center, r, func(m *model.Monster) bool {
			if m.IsDead() {
				return true
			}
			found = m.ObjectID()
			return false
		})
		if found != 0 {
			return found, true
		}
	}
	return 0, false
}
