package admin

import "testing"

func TestGetAccessLevel(t *testing.T) {
	tests := []struct {
		level    int32
		wantName string
		wantGM   bool
	}{
		{0, "User", false},
		{1, "Moderator", true},
		{2, "Game Master", true},
		{5, "Game Master", true}, // highest known <= 5
		{100, "Administrator", true},
		{200, "Administrator", true},
	}
	for _, tt := range tests {
		al := GetAccessLevel(tt.level)
		if al == nil {
			t.Fatalf("GetAccessLevel(%d) = nil, want %q", tt.level, tt.wantName)
		}
		if al.Name != tt.wantName {
			t.Errorf("GetAccessLevel(%d).Name = %q, want %q", tt.level, al.Name, tt.wantName)
		}
		if al.IsGM != tt.wantGM {
			t.Errorf("GetAccessLevel(%d).IsGM = %v, want %v", tt.level, al.IsGM, tt.wantGM)
		}
	}
}

func TestGetAccessLevel_NegativeIsBanned(t *testing.T) {
	if al := GetAccessLevel(-1); al != nil {
		t.Errorf("GetAccessLevel(-1) = %+v, want nil (banned)", al)
	}
}

func TestCanControl(t *testing.T) {
	tests := []struct {
		name   string
		actor  int64
		target int64
		level  int32
		want   bool
	}{
		{"self as user", 1, 1, 0, true},
		{"other as user", 1, 2, 0, false},
		{"other as moderator", 1, 2, 1, false},
		{"other as gm", 1, 2, 2, true},
		{"banned self", 1, 1, -1, true},
		{"banned other", 1, 2, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanControl(tt.actor, tt.target, tt.level); got != tt.want {
				t.Errorf("CanControl = %v, want %v", got, tt.want)
			}
		})
	}
}
