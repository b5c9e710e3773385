// Package admin dispatches chat commands: GM commands (//name) and user commands (/name).
package admin

// AccessLevel — уровень доступа персонажа.
// Level 0 = normal player, 1+ = GM, 100+ = full admin.
type AccessLevel struct {
	Level               int32
	Name                string
	IsGM                bool
	CanUseAdminCommands bool
	// CanControlOthers allows commands with an explicit [player] argument.
	CanControlOthers bool
}

var defaultAccessLevels = map[int32]*AccessLevel{
	0:   {Level: 0, Name: "User"},
	1:   {Level: 1, Name: "Moderator", IsGM: true, CanUseAdminCommands: true},
	2:   {Level: 2, Name: "Game Master", IsGM: true, CanUseAdminCommands: true, CanControlOthers: true},
	100: {Level: 100, Name: "Administrator", IsGM: true, CanUseAdminCommands: true, CanControlOthers: true},
}

// GetAccessLevel returns AccessLevel for the given level value.
// Unknown levels inherit from the highest known level below them.
// Negative levels (banned) return nil.
func GetAccessLevel(level int32) *AccessLevel {
	if level < 0 {
		return nil
	}

	if al, ok := defaultAccessLevels[level]; ok {
		return al
	}

	var best *AccessLevel
	for _, al := range defaultAccessLevels {
		if al.Level <= level && (best == nil || al.Level > best.Level) {
			best = al
		}
	}
	return best
}

// CanControl reports whether actor may run commands against target.
func CanControl(actor, targetCharID int64, actorLevel int32) bool {
	if actor == targetCharID {
		return true
	}
	al := GetAccessLevel(actorLevel)
	return al != nil && al.CanControlOthers
}
