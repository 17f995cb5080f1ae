package flappy

import (
	"math"
	"testing"
)

// stillPhysics keeps the bird in place so pipe behaviour can be tested alone.
func stillPhysics() Physics {
	return Physics{
		Gravity:   0,
		VelocityX: -2,
		Ceiling:   0,
		LandY:     640,
		PipeValue: 0.5,
	}
}

func testBird() Bird {
	return Bird{X: 45, Y: 320, Width: 34, Height: 24}
}

// farPipe returns a pipe well below the board so it never hits the bird.
func farPipe(x float64) Pipe {
	return Pipe{Sprite: SpritePipeBottom, X: x, Y: 2000, Width: 64, Height: 512}
}

func TestStepGravity(t *testing.T) {
	w := World{Bird: testBird()}
	p := stillPhysics()
	p.Gravity = 0.25

	w.Step(p)

	if w.VelocityY != 0.25 {
		t.Errorf("VelocityY = %v, expected 0.25", w.VelocityY)
	}
	if w.Bird.Y != 320.25 {
		t.Errorf("Bird.Y = %v, expected 320.25", w.Bird.Y)
	}
	if w.Over {
		t.Error("one gravity step from the middle should not end the game")
	}
}

func TestStepCeilingClamp(t *testing.T) {
	w := World{Bird: testBird(), VelocityY: -400}
	w.Bird.Y = 10

	w.Step(stillPhysics())

	if w.Bird.Y != 0 {
		t.Errorf("Bird.Y = %v, expected clamp to ceiling 0", w.Bird.Y)
	}
	if w.Over {
		t.Error("hitting the ceiling should not end the game")
	}
}

func TestStepLanding(t *testing.T) {
	w := World{Bird: testBird(), VelocityY: 10}
	w.Bird.Y = 635

	res := w.Step(stillPhysics())

	if !res.Landed || !w.Over {
		t.Fatalf("falling past land_y should end the game, res=%+v over=%v", res, w.Over)
	}
	if w.Bird.Y < 640 {
		t.Errorf("Bird.Y = %v, should not be above land_y after landing", w.Bird.Y)
	}
}

func TestStepOverIsNoop(t *testing.T) {
	w := World{Bird: testBird(), VelocityY: 3, Over: true, Score: 2}
	w.Pipes = []Pipe{farPipe(100)}

	res := w.Step(stillPhysics())

	if res != (StepResult{}) {
		t.Errorf("Step on a finished world returned %+v", res)
	}
	if w.Bird.Y != 320 || w.VelocityY != 3 || w.Pipes[0].X != 100 || w.Score != 2 {
		t.Errorf("finished world was mutated: %+v", w)
	}
}

func TestStepPipesMoveLeft(t *testing.T) {
	w := World{Bird: testBird(), Pipes: []Pipe{farPipe(200), farPipe(300)}}

	w.Step(stillPhysics())

	if w.Pipes[0].X != 198 || w.Pipes[1].X != 298 {
		t.Errorf("pipes at %v, %v; expected 198, 298", w.Pipes[0].X, w.Pipes[1].X)
	}
}

func TestStepScoringOnlyAfterTrailingEdge(t *testing.T) {
	w := World{Bird: testBird(), Pipes: []Pipe{farPipe(0)}}
	p := stillPhysics()

	// 45 > x+64 first holds at x = -20, i.e. after 10 frames
	for i := 1; i <= 9; i++ {
		w.Step(p)
		if w.Score != 0 || w.Pipes[0].Passed {
			t.Fatalf("frame %d: scored too early (x=%v)", i, w.Pipes[0].X)
		}
	}

	res := w.Step(p)
	if res.Passed != 1 || w.Score != 0.5 || !w.Pipes[0].Passed {
		t.Fatalf("frame 10: expected one pass worth 0.5, got res=%+v score=%v", res, w.Score)
	}

	// Passed never reverts and never scores again
	for i := 0; i < 15; i++ {
		w.Step(p)
		if len(w.Pipes) > 0 && !w.Pipes[0].Passed {
			t.Fatal("Passed flag reverted to false")
		}
	}
	if w.Score != 0.5 {
		t.Errorf("Score = %v, expected 0.5 after repeated frames", w.Score)
	}
}

func TestStepPairScoresTwice(t *testing.T) {
	top := farPipe(-19)
	top.Sprite = SpritePipeTop
	top.Y = -1000
	bottom := farPipe(-19)

	w := World{Bird: testBird(), Pipes: []Pipe{top, bottom}}
	res := w.Step(stillPhysics())

	if res.Passed != 2 {
		t.Errorf("Passed = %d, expected both halves of the pair", res.Passed)
	}
	if w.Score != 1 {
		t.Errorf("Score = %v, expected 1 for a full pair", w.Score)
	}
}

func TestStepCollision(t *testing.T) {
	pipe := Pipe{Sprite: SpritePipeBottom, X: 70, Y: 300, Width: 64, Height: 512}
	w := World{Bird: testBird(), Pipes: []Pipe{pipe}}

	res := w.Step(stillPhysics())

	if !res.Collided || !w.Over {
		t.Errorf("bird overlapping a pipe should end the game, res=%+v", res)
	}
}

func TestStepTouchingIsNotCollision(t *testing.T) {
	// After one frame the pipe's left edge sits exactly on the bird's right edge (79).
	pipe := Pipe{Sprite: SpritePipeBottom, X: 81, Y: 300, Width: 64, Height: 512}
	w := World{Bird: testBird(), Pipes: []Pipe{pipe}}

	res := w.Step(stillPhysics())

	if res.Collided || w.Over {
		t.Error("edge contact must not count as a collision")
	}
}

func TestStepPrune(t *testing.T) {
	w := World{Bird: testBird(), Pipes: []Pipe{farPipe(100)}}
	p := stillPhysics()

	for i := 0; i < 82; i++ {
		w.Step(p)
	}
	if len(w.Pipes) != 1 {
		t.Fatalf("pipe with right edge at %v should still be present", w.Pipes[0].X+w.Pipes[0].Width)
	}
	if right := w.Pipes[0].X + w.Pipes[0].Width; right != 0 {
		t.Fatalf("right edge = %v after 82 frames, expected 0", right)
	}

	res := w.Step(p)
	if len(w.Pipes) != 0 || res.Pruned != 1 {
		t.Errorf("pipe should be pruned on frame 83, pipes=%d pruned=%d", len(w.Pipes), res.Pruned)
	}
}

func TestStepPruneOnlyFromFront(t *testing.T) {
	w := World{
		Bird:  testBird(),
		Pipes: []Pipe{farPipe(-70), farPipe(-70), farPipe(150), farPipe(150)},
	}

	res := w.Step(stillPhysics())

	if res.Pruned != 2 || len(w.Pipes) != 2 {
		t.Fatalf("expected the two leading pipes pruned, got pruned=%d len=%d", res.Pruned, len(w.Pipes))
	}
	if w.Pipes[0].X != 148 {
		t.Errorf("remaining pipe at %v, expected 148", w.Pipes[0].X)
	}
}

func TestStepPipeCountStaysBounded(t *testing.T) {
	w := World{Bird: testBird()}
	p := stillPhysics()
	r := &seqRand{values: []float64{0.1, 0.9, 0.5}}

	// One pair every 90 frames, as at 60 fps with a 1500ms spawn interval
	maxLen := 0
	for frame := 0; frame < 9000; frame++ {
		if frame%90 == 0 {
			top, bottom := SpawnPair(r, 640, 64, 512, 360)
			// Keep the pair clear of the bird
			top.Y, bottom.Y = -5000, 5000
			w.Pipes = append(w.Pipes, top, bottom)
		}
		w.Step(p)
		if len(w.Pipes) > maxLen {
			maxLen = len(w.Pipes)
		}
	}

	// A pipe lives (360+64)/2 = 212 frames, so at most 3 pairs overlap
	if maxLen > 6 {
		t.Errorf("pipe sequence grew to %d entries", maxLen)
	}
	if math.Mod(w.Score, 1) != 0 {
		t.Errorf("Score = %v, pairs should always score whole points", w.Score)
	}
}
