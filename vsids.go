package satisfy

import "container/heap"

// vsidsRescaleThreshold bounds activity growth the way MiniSat-family
// solvers do: once any activity would cross it, every activity (and the
// bump increment) is scaled down together, preserving relative order.
const vsidsRescaleThreshold = 1e100

// varHeapItem is one entry in the activity-ordered priority queue, an
// integer variable id paired with its position in the heap slice so the
// queue can support fix/remove by variable, not just by heap root.
type varHeapItem struct {
	v int
	i int
}

// varHeap is a max-heap over variable activity, the same index-tracking
// design as a watch-list-size heap: a parallel map from variable to heap
// slice position lets bump/decay reposition an entry in place instead of
// rebuilding the queue.
type varHeap struct {
	activity []float64 // shared with vsids; indexed by variable
	items    []varHeapItem
	pos      map[int]int // variable -> index in items, absent if not queued
}

func newVarHeap(activity []float64) *varHeap {
	return &varHeap{activity: activity, pos: make(map[int]int)}
}

func (h *varHeap) Len() int { return len(h.items) }

func (h *varHeap) Less(i, j int) bool {
	return h.activity[h.items[i].v] > h.activity[h.items[j].v]
}

func (h *varHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].i = i
	h.items[j].i = j
	h.pos[h.items[i].v] = i
	h.pos[h.items[j].v] = j
}

func (h *varHeap) Push(x interface{}) {
	it := x.(varHeapItem)
	it.i = len(h.items)
	h.pos[it.v] = it.i
	h.items = append(h.items, it)
}

func (h *varHeap) Pop() interface{} {
	it := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	delete(h.pos, it.v)
	return it
}

func (h *varHeap) contains(v int) bool {
	_, ok := h.pos[v]
	return ok
}

// vsids tracks per-variable activity and phase memory, and hands out the
// next decision variable in activity order.
type vsids struct {
	activity []float64 // index by variable, 1..numVars
	phase    []bool    // last assigned value per variable, for phase saving
	bump     float64
	decay    float64
	queue    *varHeap
}

func newVSIDS(numVars int, cfg Config) *vsids {
	activity := make([]float64, numVars+1)
	phase := make([]bool, numVars+1)
	q := newVarHeap(activity)
	heap.Init(q)
	for v := 1; v <= numVars; v++ {
		heap.Push(q, varHeapItem{v: v})
	}
	return &vsids{
		activity: activity,
		phase:    phase,
		bump:     cfg.VSIDSBump,
		decay:    cfg.VSIDSDecay,
		queue:    q,
	}
}

// bumpVar increases v's activity, rescaling every activity (and the bump
// increment itself) if the new value would overflow the threshold.
func (s *vsids) bumpVar(v int) {
	s.activity[v] += s.bump
	if s.activity[v] > vsidsRescaleThreshold {
		for i := range s.activity {
			s.activity[i] /= vsidsRescaleThreshold
		}
		s.bump /= vsidsRescaleThreshold
	}
	if i, ok := s.queue.pos[v]; ok {
		heap.Fix(s.queue, i)
	}
}

// decayAll shrinks the future effect of past bumps by growing the bump
// increment instead of touching every activity value, the standard VSIDS
// trick: bump /= decay is equivalent to scaling every stored activity by
// decay, without an O(numVars) pass.
func (s *vsids) decayAll() {
	s.bump /= s.decay
}

// remove takes v out of the decision pool, called the moment it's assigned.
func (s *vsids) remove(v int) {
	if i, ok := s.queue.pos[v]; ok {
		heap.Remove(s.queue, i)
	}
}

// restore returns v to the decision pool, called when it's unassigned by a
// backjump.
func (s *vsids) restore(v int) {
	if !s.queue.contains(v) {
		heap.Push(s.queue, varHeapItem{v: v})
	}
}

// pick pops the highest-activity unassigned variable. It returns 0 if none
// remain (every variable is assigned).
func (s *vsids) pick() int {
	if s.queue.Len() == 0 {
		return 0
	}
	it := heap.Pop(s.queue).(varHeapItem)
	return it.v
}

// savedPhase reports the polarity to try first for v, per phase saving: the
// value v had the last time it was assigned, defaulting to false the first
// time v is ever decided.
func (s *vsids) savedPhase(v int) bool { return s.phase[v] }

func (s *vsids) savePhase(v int, value bool) { s.phase[v] = value }
