package model

import "testing"

func TestAnimationAdvanceLoops(t *testing.T) {
	a := NewAnimation(AnimWalk, Clip{BaseFrame: 0, FrameCount: 4, Loop: true}, 0.15)

	for i := 0; i < 4; i++ {
		a = a.Advance(0.15)
	}
	if a.Frame != 0 || a.Finished {
		t.Fatalf("looping clip should wrap to 0, got frame %d finished=%v", a.Frame, a.Finished)
	}

	a = a.Advance(0.1)
	if a.Frame != 0 || a.Timer != 0.1 {
		t.Fatalf("partial tick should only accumulate, got frame %d timer %v", a.Frame, a.Timer)
	}
}

func TestAnimationAdvanceHoldsLastFrame(t *testing.T) {
	a := NewAnimation(AnimDeath, Clip{BaseFrame: 7, FrameCount: 3}, 0.15)

	for i := 0; i < 10; i++ {
		a = a.Advance(0.2)
	}
	if !a.Finished || a.Frame != 2 || a.TextureFrame() != 9 {
		t.Fatalf("got frame %d texture %d finished=%v", a.Frame, a.TextureFrame(), a.Finished)
	}
}

func TestAnimationAdvanceIsPure(t *testing.T) {
	a := NewAnimation(AnimWalk, Clip{FrameCount: 4, Loop: true}, 0.1)
	b := a.Advance(0.1)
	if a.Frame != 0 || b.Frame != 1 {
		t.Fatalf("receiver mutated: a=%d b=%d", a.Frame, b.Frame)
	}
}

func TestAnimationSwitch(t *testing.T) {
	walk := Clip{BaseFrame: 0, FrameCount: 4, Loop: true}
	attack := Clip{BaseFrame: 4, FrameCount: 3, Loop: true}

	a := NewAnimation(AnimWalk, walk, 0.15).Advance(0.15)
	if same := a.Switch(AnimWalk, walk); same.Frame != 1 {
		t.Fatalf("switching to the running clip should be a no-op, frame %d", same.Frame)
	}

	b := a.Switch(AnimAttack, attack)
	if b.Kind != AnimAttack || b.Frame != 0 || b.TextureFrame() != 4 || b.FrameDuration != 0.15 {
		t.Fatalf("unexpected switch result %+v", b)
	}
}
