package model

// Location представляет координаты клетки на карте.
// Value type, передаётся по значению (immutable).
type Location struct {
	MapID int32
	X     int32
	Y     int32
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(mapID, x, y int32) Location {
	return Location{MapID: mapID, X: x, Y: y}
}

// WithCoordinates возвращает новый Location на той же карте (immutable pattern).
func (l Location) WithCoordinates(x, y int32) Location {
	l.X = x
	l.Y = y
	return l
}

// Offset возвращает Location, сдвинутый на (dx, dy).
func (l Location) Offset(dx, dy int32) Location {
	l.X += dx
	l.Y += dy
	return l
}

// ChebyshevDistance возвращает расстояние в клетках (max(|dx|, |dy|)).
// Для точек на разных картах возвращает -1.
func (l Location) ChebyshevDistance(other Location) int32 {
	if l.MapID != other.MapID {
		return -1
	}
	return max(abs32(l.X-other.X), abs32(l.Y-other.Y))
}

// InSquare reports whether other lies in the square of half-width radius around l.
func (l Location) InSquare(other Location, radius int32) bool {
	d := l.ChebyshevDistance(other)
	return d >= 0 && d <= radius
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
