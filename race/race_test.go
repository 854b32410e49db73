package race_test

import (
	"errors"
	"testing"

	"github.com/gridrace/gridrace/grid"
	"github.com/gridrace/gridrace/race"
	"github.com/gridrace/gridrace/search"
)

// stub is a scripted competitor: it runs for a fixed number of steps,
// then reports a fixed terminal status and node count. It lets the
// winner rules be pinned without depending on algorithm behavior.
type stub struct {
	name     string
	stepsTot int
	terminal search.Status
	nodes    int

	steps  int
	status search.Status
}

func newStub(name string, steps int, terminal search.Status, nodes int) *stub {
	return &stub{name: name, stepsTot: steps, terminal: terminal, nodes: nodes}
}

func (s *stub) Name() string { return s.name }

func (s *stub) Reset(g *grid.Grid, start, goal grid.Coord) error {
	if g == nil {
		return search.ErrNilGrid
	}
	s.steps = 0
	s.status = search.Continue

	return nil
}

func (s *stub) Step() search.Status {
	if s.status != search.Continue {
		return s.status
	}
	s.steps++
	if s.steps >= s.stepsTot {
		s.status = s.terminal
	}

	return s.status
}

func (s *stub) Result() (search.Result, error) {
	if s.status == search.Continue {
		return search.Result{}, search.ErrNotFinished
	}

	return s.Snapshot(), nil
}

func (s *stub) Trace() search.Trace { return nil }

func (s *stub) Snapshot() search.Result {
	return search.Result{
		Success:       s.status == search.GoalFound,
		NodesExplored: s.nodes,
	}
}

func openGrid(t *testing.T, size int) *grid.Grid {
	t.Helper()
	g, err := grid.New(size, size)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}

	return g
}

// TestNew_Validation rejects nil inputs with the sentinel errors.
func TestNew_Validation(t *testing.T) {
	g := openGrid(t, 5)
	bfs, astar := search.NewBFS(), search.NewAStar()

	if _, err := race.New(nil, bfs, astar); !errors.Is(err, race.ErrNilGrid) {
		t.Errorf("nil grid error = %v; want ErrNilGrid", err)
	}
	if _, err := race.New(g, nil, astar); !errors.Is(err, race.ErrNilSearcher) {
		t.Errorf("nil left error = %v; want ErrNilSearcher", err)
	}
	if _, err := race.New(g, bfs, nil); !errors.Is(err, race.ErrNilSearcher) {
		t.Errorf("nil right error = %v; want ErrNilSearcher", err)
	}
	if _, err := race.New(g, bfs, astar); err != nil {
		t.Errorf("valid race error = %v; want nil", err)
	}
}

// TestTick_Lockstep advances both sides by exactly one step per tick
// while they are live.
func TestTick_Lockstep(t *testing.T) {
	g := openGrid(t, 8)
	r, err := race.New(g, search.NewBFS(), search.NewUCS())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 1; i <= 3; i++ {
		r.Tick()
		left, right := r.Status()
		if left.Ticks != i || right.Ticks != i {
			t.Fatalf("after tick %d: ticks = %d/%d", i, left.Ticks, right.Ticks)
		}
		if left.Terminal() || right.Terminal() {
			t.Fatalf("race terminal after only %d ticks", i)
		}
	}
}

// TestTick_TerminalSideStops freezes a finished side while the other
// keeps stepping.
func TestTick_TerminalSideStops(t *testing.T) {
	g := openGrid(t, 5)
	quick := newStub("quick", 2, search.GoalFound, 2)
	slow := newStub("slow", 10, search.GoalFound, 10)
	r, err := race.New(g, quick, slow)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 6; i++ {
		r.Tick()
	}
	left, right := r.Status()
	if left.Ticks != 2 {
		t.Errorf("finished side kept ticking: %d ticks", left.Ticks)
	}
	if !left.Terminal() || left.Status != search.GoalFound {
		t.Errorf("quick side status = %v; want GoalFound", left.Status)
	}
	if right.Ticks != 6 || right.Terminal() {
		t.Errorf("live side = %d ticks, terminal=%v; want 6 ticks, live", right.Ticks, right.Terminal())
	}
	if r.Done() {
		t.Error("race reported Done with one side still running")
	}
}

// TestRunToCompletion drives both sides to terminal states.
func TestRunToCompletion(t *testing.T) {
	g := openGrid(t, 10)
	r, err := race.New(g, search.NewAStar(), search.NewDFS())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.RunToCompletion()
	if !r.Done() {
		t.Fatal("RunToCompletion returned before Done")
	}
	left, right := r.Status()
	for _, side := range []race.Side{left, right} {
		if !side.Terminal() {
			t.Errorf("%s not terminal after RunToCompletion", side.Name)
		}
		if !side.Result.Success {
			t.Errorf("%s failed on an open grid", side.Name)
		}
	}
}

// TestWinner pins the full decision table with scripted competitors.
func TestWinner(t *testing.T) {
	cases := []struct {
		name     string
		left     *stub
		right    *stub
		wantName string
		wantOK   bool
	}{
		{
			name:     "OnlyLeftFinds",
			left:     newStub("L", 3, search.GoalFound, 3),
			right:    newStub("R", 3, search.Exhausted, 3),
			wantName: "L", wantOK: true,
		},
		{
			name:     "OnlyRightFinds",
			left:     newStub("L", 2, search.Exhausted, 2),
			right:    newStub("R", 5, search.GoalFound, 5),
			wantName: "R", wantOK: true,
		},
		{
			name:   "NeitherFinds",
			left:   newStub("L", 2, search.Exhausted, 2),
			right:  newStub("R", 3, search.Exhausted, 3),
			wantOK: false,
		},
		{
			name:     "FewerTicksWins",
			left:     newStub("L", 7, search.GoalFound, 7),
			right:    newStub("R", 4, search.GoalFound, 4),
			wantName: "R", wantOK: true,
		},
		{
			name:     "TickTieFewerNodesWins",
			left:     newStub("L", 5, search.GoalFound, 9),
			right:    newStub("R", 5, search.GoalFound, 4),
			wantName: "R", wantOK: true,
		},
		{
			name:     "DeadTieLeftWins",
			left:     newStub("L", 5, search.GoalFound, 5),
			right:    newStub("R", 5, search.GoalFound, 5),
			wantName: "L", wantOK: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := openGrid(t, 5)
			r, err := race.New(g, tc.left, tc.right)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if _, ok := r.Winner(); ok {
				t.Error("Winner reported ok before the race finished")
			}
			r.RunToCompletion()
			name, ok := r.Winner()
			if ok != tc.wantOK || name != tc.wantName {
				t.Errorf("Winner() = (%q, %v); want (%q, %v)", name, ok, tc.wantName, tc.wantOK)
			}
		})
	}
}

// TestSpeed_StepsPerTick pins the pacing table across presets and frame
// rates.
func TestSpeed_StepsPerTick(t *testing.T) {
	cases := []struct {
		speed       race.Speed
		fps         int
		wantBatch   int
		wantInstant bool
	}{
		{race.Slow, 60, 1, false},
		{race.Normal, 60, 1, false},
		{race.Fast, 60, 2, false},
		{race.Fast, 30, 4, false},
		{race.Instant, 60, 0, true},
		{race.Normal, 0, 1, false}, // fps guard defaults to 60
		{race.Slow, 10, 1, false},
	}
	for _, tc := range cases {
		batch, instant := tc.speed.StepsPerTick(tc.fps)
		if batch != tc.wantBatch || instant != tc.wantInstant {
			t.Errorf("%v.StepsPerTick(%d) = (%d, %v); want (%d, %v)",
				tc.speed, tc.fps, batch, instant, tc.wantBatch, tc.wantInstant)
		}
	}
}

// TestSpeed_String covers the preset names and the fallback.
func TestSpeed_String(t *testing.T) {
	want := map[race.Speed]string{
		race.Slow:      "Slow",
		race.Normal:    "Normal",
		race.Fast:      "Fast",
		race.Instant:   "Instant",
		race.Speed(99): "Normal",
	}
	for s, name := range want {
		if got := s.String(); got != name {
			t.Errorf("Speed(%d).String() = %q; want %q", int(s), got, name)
		}
	}
}
