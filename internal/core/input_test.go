package core

import "testing"

func TestResolveDirection(t *testing.T) {
	const center = 200.0
	const deadZone = 5.0

	tests := []struct {
		name     string
		in       InputSnapshot
		expected Direction
	}{
		{"no input", InputSnapshot{}, DirNone},
		{"left held", InputSnapshot{Left: true}, DirLeft},
		{"right held", InputSnapshot{Right: true}, DirRight},
		{"both keys cancel", InputSnapshot{Left: true, Right: true}, DirNone},
		{"pointer to the right", InputSnapshot{Pointer: true, PointerX: 300}, DirRight},
		{"pointer to the left", InputSnapshot{Pointer: true, PointerX: 50}, DirLeft},
		{"pointer inside dead zone", InputSnapshot{Pointer: true, PointerX: 203}, DirNone},
		{"pointer beats keys", InputSnapshot{Left: true, Pointer: true, PointerX: 350}, DirRight},
		{"pointer x ignored when up", InputSnapshot{Right: true, PointerX: 0}, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveDirection(tc.in, center, deadZone)
			if got != tc.expected {
				t.Errorf("ResolveDirection() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionSign(t *testing.T) {
	if DirLeft.Sign() != -1 {
		t.Error("DirLeft.Sign() should be -1")
	}
	if DirRight.Sign() != 1 {
		t.Error("DirRight.Sign() should be 1")
	}
	if DirNone.Sign() != 0 {
		t.Error("DirNone.Sign() should be 0")
	}
	if Direction(42).String() != "Unknown" {
		t.Error("unknown direction should stringify as Unknown")
	}
}
