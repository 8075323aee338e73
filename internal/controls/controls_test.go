package controls

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestApplyRotation(t *testing.T) {
	tests := []struct {
		name string
		held Action
		want Orientation
	}{
		{"none", 0, Orientation{}},
		{"pitch up", PitchUp, Orientation{Pitch: 50}},
		{"pitch down", PitchDown, Orientation{Pitch: -50}},
		{"yaw left", YawLeft, Orientation{Yaw: 50}},
		{"yaw right", YawRight, Orientation{Yaw: -50}},
		{"roll both ways cancels", RollLeft | RollRight, Orientation{}},
		{"roll left and pitch up", RollLeft | PitchUp, Orientation{Pitch: 50, Roll: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{RotateSpeed: 100}
			s.Apply(Frame{DT: 0.5, Held: tt.held})
			if s.Orientation != tt.want {
				t.Errorf("Orientation = %+v, want %+v", s.Orientation, tt.want)
			}
		})
	}
}

func TestApplyAutoRotate(t *testing.T) {
	s := State{RotateSpeed: 100, AutoRotate: 20}
	for i := 0; i < 4; i++ {
		s.Apply(Frame{DT: 0.25})
	}
	if !mgl32.FloatEqualThreshold(s.Orientation.Yaw, 20, 1e-4) {
		t.Errorf("Yaw = %v after one second, want 20", s.Orientation.Yaw)
	}
}

func TestApplyWrapsAngles(t *testing.T) {
	s := State{RotateSpeed: 100}
	s.Apply(Frame{DT: 4, Held: PitchUp | YawRight})

	if s.Orientation.Pitch != 40 {
		t.Errorf("Pitch = %v, want 40", s.Orientation.Pitch)
	}
	if s.Orientation.Yaw != -40 {
		t.Errorf("Yaw = %v, want -40", s.Orientation.Yaw)
	}
}

func TestApplyWireframeToggle(t *testing.T) {
	s := State{}

	rest := s.Apply(Frame{Pressed: ToggleWireframe})
	if !s.Wireframe {
		t.Error("expected wireframe on after first press")
	}
	if rest != 0 {
		t.Errorf("toggle should be consumed, got %b", rest)
	}

	// Holding the key must not flip it again
	s.Apply(Frame{Held: ToggleWireframe})
	if !s.Wireframe {
		t.Error("holding the toggle key should not change wireframe")
	}

	s.Apply(Frame{Pressed: ToggleWireframe})
	if s.Wireframe {
		t.Error("expected wireframe off after second press")
	}
}

func TestApplyPassesThroughActions(t *testing.T) {
	s := State{}
	rest := s.Apply(Frame{Pressed: Screenshot | Quit | ToggleWireframe})
	if !rest.Has(Screenshot) || !rest.Has(Quit) {
		t.Errorf("expected Screenshot and Quit to pass through, got %b", rest)
	}
	if rest.Has(ToggleWireframe) {
		t.Error("ToggleWireframe should be handled by Apply")
	}
}

func TestFrameMovement(t *testing.T) {
	tests := []struct {
		held           Action
		forward, right float32
	}{
		{0, 0, 0},
		{MoveForward, 1, 0},
		{MoveBack, -1, 0},
		{MoveRight, 0, 1},
		{MoveLeft | MoveForward, 1, -1},
		{MoveLeft | MoveRight, 0, 0},
	}

	for _, tt := range tests {
		f, r := Frame{Held: tt.held}.Movement()
		if f != tt.forward || r != tt.right {
			t.Errorf("Movement(%b) = (%v, %v), want (%v, %v)", tt.held, f, r, tt.forward, tt.right)
		}
	}
}

func TestOrientationMatrix(t *testing.T) {
	if m := (Orientation{}).Matrix(); !m.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("zero orientation should be identity, got %v", m)
	}

	// Pitch 90 then yaw 90: +Y goes to +Z under X, then to +X under Y.
	m := Orientation{Pitch: 90, Yaw: 90}.Matrix()
	got := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("rotated +Y = %v, want +X", got)
	}
}
