package model

// -- animation

type AnimationKind int

const (
	AnimWalk AnimationKind = iota
	AnimAttack
	AnimDeath
	AnimIdle
	AnimFiring
)

// Clip describes a run of frames in a texture strip.
type Clip struct {
	BaseFrame  int
	FrameCount int
	Loop       bool
}

// Animation is a value type; Advance and Switch return the next state and never
// mutate the receiver.
type Animation struct {
	Kind          AnimationKind
	Clip          Clip
	Frame         int
	Timer         float64
	FrameDuration float64
	Finished      bool
}

func NewAnimation(kind AnimationKind, clip Clip, frameDuration float64) Animation {
	return Animation{Kind: kind, Clip: clip, FrameDuration: frameDuration}
}

// Advance moves the animation forward by dt seconds. A looping clip wraps to
// its first frame; a non-looping clip holds its last frame and is marked
// finished.
func (a Animation) Advance(dt float64) Animation {
	if a.Finished || a.Clip.FrameCount <= 0 {
		return a
	}

	a.Timer += dt
	if a.Timer < a.FrameDuration {
		return a
	}

	a.Timer = 0
	a.Frame++
	if a.Frame >= a.Clip.FrameCount {
		if a.Clip.Loop {
			a.Frame = 0
		} else {
			a.Frame = a.Clip.FrameCount - 1
			a.Finished = true
		}
	}
	return a
}

// Switch starts a different clip. Switching to the clip already playing is a
// no-op unless that clip has finished.
func (a Animation) Switch(kind AnimationKind, clip Clip) Animation {
	if a.Kind == kind && !a.Finished {
		return a
	}
	return Animation{Kind: kind, Clip: clip, FrameDuration: a.FrameDuration}
}

// TextureFrame returns the absolute frame index within the texture strip.
func (a Animation) TextureFrame() int {
	return a.Clip.BaseFrame + a.Frame
}
