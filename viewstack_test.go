package treeline

import "testing"

func TestViewStack_EmptyStack(t *testing.T) {
	var s ViewStack
	if _, _, ok := s.Projection(); ok {
		t.Error("empty stack should have no projection")
	}
}

func TestViewStack_RootOnly(t *testing.T) {
	s := ViewStack{}
	s.Push(mustVP(t, NewExpanse(100, 100), NewRect(20, 30, 10, 10), Point{X: 2, Y: 3}))
	offset, screen, ok := s.Projection()
	if !ok {
		t.Fatal("root projection should be visible")
	}
	if offset != (Point{X: 2, Y: 3}) {
		t.Errorf("offset = %+v, want (2,3)", offset)
	}
	if screen != NewRect(2, 3, 10, 10) {
		t.Errorf("screen = %+v, want (2,3,10,10)", screen)
	}
}

// A child whose viewport exactly mirrors the parent's view projects to the
// parent's own screen rect.
func TestViewStack_TwoLevelIdentity(t *testing.T) {
	parent := mustVP(t, NewExpanse(100, 100), NewRect(0, 0, 10, 10), Point{})
	child := mustVP(t, NewExpanse(10, 10), NewRect(0, 0, 10, 10), Point{})

	s := ViewStack{}
	s.Push(parent)
	s.Push(child)

	_, screen, ok := s.Projection()
	if !ok {
		t.Fatal("projection should be visible")
	}
	if screen != parent.ScreenRect() {
		t.Errorf("screen = %+v, want parent's screen rect %+v", screen, parent.ScreenRect())
	}
}

func TestViewStack_Projection(t *testing.T) {
	type tc struct {
		build      func(t *testing.T, s *ViewStack)
		wantOffset Point
		wantScreen Rect
		wantOK     bool
	}

	tests := map[string]tc{
		"child clipped by parent view": {
			build: func(t *testing.T, s *ViewStack) {
				s.Push(mustVP(t, NewExpanse(100, 100), NewRect(0, 0, 10, 10), Point{}))
				s.Push(mustVP(t, NewExpanse(10, 10), NewRect(0, 0, 10, 10), Point{X: 5, Y: 5}))
			},
			wantOffset: Point{X: 5, Y: 5},
			wantScreen: NewRect(5, 5, 5, 5),
			wantOK:     true,
		},
		"scrolled parent shifts child": {
			build: func(t *testing.T, s *ViewStack) {
				s.Push(mustVP(t, NewExpanse(100, 100), NewRect(20, 20, 10, 10), Point{}))
				s.Push(mustVP(t, NewExpanse(10, 10), NewRect(0, 0, 10, 10), Point{X: 25, Y: 25}))
			},
			wantOffset: Point{X: 5, Y: 5},
			wantScreen: NewRect(5, 5, 5, 5),
			wantOK:     true,
		},
		"child scrolled ancestor out of view": {
			build: func(t *testing.T, s *ViewStack) {
				s.Push(mustVP(t, NewExpanse(100, 100), NewRect(50, 50, 10, 10), Point{}))
				s.Push(mustVP(t, NewExpanse(10, 10), NewRect(0, 0, 10, 10), Point{}))
			},
			wantOK: false,
		},
		"zero area view is invisible": {
			build: func(t *testing.T, s *ViewStack) {
				s.Push(mustVP(t, NewExpanse(100, 100), NewRect(0, 0, 10, 10), Point{}))
				s.Push(mustVP(t, NewExpanse(10, 10), NewRect(0, 0, 0, 0), Point{}))
			},
			wantOK: false,
		},
		"three levels compose": {
			build: func(t *testing.T, s *ViewStack) {
				s.Push(mustVP(t, NewExpanse(100, 100), NewRect(0, 0, 40, 40), Point{X: 1, Y: 1}))
				s.Push(mustVP(t, NewExpanse(30, 30), NewRect(0, 0, 30, 30), Point{X: 5, Y: 5}))
				s.Push(mustVP(t, NewExpanse(20, 20), NewRect(10, 10, 10, 10), Point{X: 15, Y: 15}))
			},
			// Level 1 maps its canvas to screen at (1,1); the grandchild sits
			// at (5,5)+(15,15) on screen with its own view scrolled to (10,10).
			wantOffset: Point{X: 21, Y: 21},
			wantScreen: NewRect(21, 21, 10, 10),
			wantOK:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := &ViewStack{}
			tt.build(t, s)
			offset, screen, ok := s.Projection()
			if ok != tt.wantOK {
				t.Fatalf("Projection() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if offset != tt.wantOffset {
				t.Errorf("offset = %+v, want %+v", offset, tt.wantOffset)
			}
			if screen != tt.wantScreen {
				t.Errorf("screen = %+v, want %+v", screen, tt.wantScreen)
			}
		})
	}
}

func TestViewStack_PushPop(t *testing.T) {
	s := ViewStack{}
	a := mustVP(t, NewExpanse(10, 10), NewRect(0, 0, 10, 10), Point{})
	b := mustVP(t, NewExpanse(10, 10), NewRect(0, 0, 10, 10), Point{X: 3, Y: 0})

	s.Push(a)
	s.Push(b)
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}
	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("Depth() after Pop = %d, want 1", s.Depth())
	}
	_, screen, ok := s.Projection()
	if !ok || screen != NewRect(0, 0, 10, 10) {
		t.Errorf("after Pop projection = %+v ok=%v, want root rect", screen, ok)
	}
}
