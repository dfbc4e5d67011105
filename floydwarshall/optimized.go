package floydwarshall

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// parallelThreshold is the minimum vertex count above which Generate
// partitions rows across goroutines instead of running single-threaded.
const parallelThreshold = 64

// simdLane is the unroll width used to emulate 4-lane SIMD over plain
// scalar ops; there is no cgo/asm in this module, so "SIMD" here means an
// unrolled loop the compiler can vectorize, not hardware intrinsics.
const simdLane = 4

// OptimizedOption configures a FloydWarshallOptimized at construction time.
type OptimizedOption func(*optimizedConfig)

type optimizedConfig struct {
	parallel bool
	simd     bool
}

// WithParallel toggles row-partitioned goroutine parallelism for Generate.
// Defaults to true; parallelism only engages above parallelThreshold
// vertices regardless of this setting.
func WithParallel(enabled bool) OptimizedOption {
	return func(c *optimizedConfig) { c.parallel = enabled }
}

// WithSIMD toggles the 4-lane unrolled inner loop. Defaults to true.
func WithSIMD(enabled bool) OptimizedOption {
	return func(c *optimizedConfig) { c.simd = enabled }
}

// FloydWarshallOptimized is a drop-in accelerated counterpart to
// FloydWarshall: same dist/next contract, same entity-mapping surface, but
// Generate dispatches to an unrolled and optionally goroutine-parallel
// relaxation. Both engines must produce bit-identical dist matrices on the
// same input.
type FloydWarshallOptimized[W Unsigned] struct {
	n    int
	dist []W
	next []int32

	entities *entityMap
	cfg      optimizedConfig
}

// NewOptimized allocates a FloydWarshallOptimized sized for n vertices.
func NewOptimized[W Unsigned](n int, opts ...OptimizedOption) *FloydWarshallOptimized[W] {
	cfg := optimizedConfig{parallel: true, simd: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	fw := &FloydWarshallOptimized[W]{cfg: cfg}
	fw.Resize(n)
	fw.Clean()
	return fw
}

func (fw *FloydWarshallOptimized[W]) Size() int { return fw.n }

// Deinit is a no-op, retained for lifecycle-surface symmetry with the
// scalar engine; Go is garbage-collected.
func (fw *FloydWarshallOptimized[W]) Deinit() {}

func (fw *FloydWarshallOptimized[W]) Resize(n int) error {
	if n < 0 || (n != 0 && n > (1<<31)/n) {
		return ErrSizeOverflow
	}
	need := n * n
	if need <= cap(fw.dist) {
		// Reuse the existing backing arrays whenever the new size still
		// fits previously allocated capacity — including growing back up
		// after a prior shrink — not only when n itself is shrinking.
		fw.n = n
		fw.dist = fw.dist[:need]
		fw.next = fw.next[:need]
		fw.entities = newEntityMap(n)
		return nil
	}
	fw.n = n
	fw.dist = make([]W, need)
	fw.next = make([]int32, need)
	fw.entities = newEntityMap(n)
	return nil
}

func (fw *FloydWarshallOptimized[W]) Clean() {
	inf := maxValue[W]()
	n := fw.n
	for i := 0; i < n; i++ {
		row := i * n
		for j := 0; j < n; j++ {
			if i == j {
				fw.dist[row+j] = 0
			} else {
				fw.dist[row+j] = inf
			}
			fw.next[row+j] = int32(j)
		}
	}
	if fw.entities != nil {
		fw.entities.reset()
	}
}

func (fw *FloydWarshallOptimized[W]) AddEdge(u, v int, w W) error {
	if u < 0 || u >= fw.n || v < 0 || v >= fw.n {
		return ErrIndexOutOfRange
	}
	idx := u*fw.n + v
	if w < fw.dist[idx] {
		fw.dist[idx] = w
		fw.next[idx] = int32(v)
	}
	return nil
}

func (fw *FloydWarshallOptimized[W]) AddEdgeWithMapping(u, v uint64, w W) error {
	ui, err := fw.entities.ensureIndex(u, fw.n)
	if err != nil {
		return err
	}
	vi, err := fw.entities.ensureIndex(v, fw.n)
	if err != nil {
		return err
	}
	return fw.AddEdge(int(ui), int(vi), w)
}

func (fw *FloydWarshallOptimized[W]) Dist(i, j int) (W, bool) {
	inf := maxValue[W]()
	if i < 0 || i >= fw.n || j < 0 || j >= fw.n {
		return inf, false
	}
	d := fw.dist[i*fw.n+j]
	return d, d != inf
}

func (fw *FloydWarshallOptimized[W]) Next(i, j int) (int, bool) {
	if _, ok := fw.Dist(i, j); !ok {
		return 0, false
	}
	return int(fw.next[i*fw.n+j]), true
}

func (fw *FloydWarshallOptimized[W]) NextWithMapping(u, v uint64) (uint64, bool) {
	ui, ok := fw.entities.indexOf(u)
	if !ok {
		return 0, false
	}
	vi, ok := fw.entities.indexOf(v)
	if !ok {
		return 0, false
	}
	nextIdx, ok := fw.Next(int(ui), int(vi))
	if !ok {
		return 0, false
	}
	return fw.entities.idOf(uint32(nextIdx))
}

func (fw *FloydWarshallOptimized[W]) SetPath(buf []int, u, v int) ([]int, error) {
	if _, ok := fw.Dist(u, v); !ok {
		return buf, ErrPathNotFound
	}
	start := len(buf)
	buf = append(buf, u)
	cur := u
	for cur != v {
		hop, ok := fw.Next(cur, v)
		if !ok {
			return buf[:start], ErrPathNotFound
		}
		cur = hop
		buf = append(buf, cur)
	}
	return buf, nil
}

func (fw *FloydWarshallOptimized[W]) SetPathWithMapping(buf []uint64, u, v uint64) ([]uint64, error) {
	start := len(buf)
	ui, ok := fw.entities.indexOf(u)
	if !ok {
		return buf, ErrPathNotFound
	}
	vi, ok := fw.entities.indexOf(v)
	if !ok {
		return buf, ErrPathNotFound
	}
	if _, ok := fw.Dist(int(ui), int(vi)); !ok {
		return buf, ErrPathNotFound
	}
	buf = append(buf, u)
	cur := u
	for cur != v {
		nextID, ok := fw.NextWithMapping(cur, v)
		if !ok {
			return buf[:start], ErrPathNotFound
		}
		cur = nextID
		buf = append(buf, cur)
	}
	return buf, nil
}

// Generate dispatches to one of three relaxation strategies based on the
// engine's configuration and vertex count: plain scalar, SIMD-unrolled
// single-threaded, or rows partitioned across goroutines synchronized by a
// per-k barrier (using the SIMD-unrolled inner loop when SIMD is enabled).
func (fw *FloydWarshallOptimized[W]) Generate() {
	switch {
	case fw.cfg.parallel && fw.n > parallelThreshold:
		fw.generateParallel()
	case fw.cfg.simd:
		fw.generateSIMD(0, fw.n)
	default:
		fw.generateScalar(0, fw.n)
	}
}

// generateScalar relaxes rows [rowStart,rowEnd) through every k, one
// column at a time. Used when SIMD unrolling is disabled.
func (fw *FloydWarshallOptimized[W]) generateScalar(rowStart, rowEnd int) {
	n := fw.n
	inf := maxValue[W]()
	dist := fw.dist
	next := fw.next
	for k := 0; k < n; k++ {
		for i := rowStart; i < rowEnd; i++ {
			dik := dist[i*n+k]
			if dik == inf {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist[k*n+j]
				if dkj == inf {
					continue
				}
				v := saturatingAdd(dik, dkj)
				if v < dist[i*n+j] {
					dist[i*n+j] = v
					next[i*n+j] = next[i*n+k]
				}
			}
		}
	}
}

// generateSIMD relaxes rows [rowStart,rowEnd) through every k, processing
// the inner j loop four columns at a time (an unrolled shape a compiler
// can autovectorize), falling back to scalar for the trailing remainder.
func (fw *FloydWarshallOptimized[W]) generateSIMD(rowStart, rowEnd int) {
	n := fw.n
	inf := maxValue[W]()
	dist := fw.dist
	next := fw.next
	for k := 0; k < n; k++ {
		krow := k * n
		for i := rowStart; i < rowEnd; i++ {
			dik := dist[i*n+k]
			if dik == inf {
				continue
			}
			irow := i * n
			j := 0
			for ; j+simdLane <= n; j += simdLane {
				for lane := 0; lane < simdLane; lane++ {
					jj := j + lane
					dkj := dist[krow+jj]
					if dkj == inf {
						continue
					}
					v := saturatingAdd(dik, dkj)
					if v < dist[irow+jj] {
						dist[irow+jj] = v
						next[irow+jj] = next[irow+k]
					}
				}
			}
			for ; j < n; j++ {
				dkj := dist[krow+j]
				if dkj == inf {
					continue
				}
				v := saturatingAdd(dik, dkj)
				if v < dist[irow+j] {
					dist[irow+j] = v
					next[irow+j] = next[irow+k]
				}
			}
		}
	}
}

// generateParallel partitions rows across GOMAXPROCS goroutines. Every
// goroutine must finish relaxing step k for its row partition before any
// goroutine may read row k as the "through" row at step k+1, since row k
// itself may still be settling in another goroutine's partition. This is
// enforced with a single pair of atomic counters, reused for every k: an
// arrival count, and the number of the last released round. The last worker
// to arrive after step k releases round k+1; the others spin (yielding via
// runtime.Gosched) until it does, rather than blocking on a channel per k.
func (fw *FloydWarshallOptimized[W]) generateParallel() {
	n := fw.n
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	// Partition rows evenly among workers: the first n%workers workers get
	// one extra row each, so every one of the T=min(GOMAXPROCS,n) workers
	// gets at least one row and none is skipped. A ceil-division partition
	// can leave trailing workers with an empty range; since the barrier
	// divisor below is exactly the number of workers that reach it, an
	// empty (never-spawned) partition would make that count unreachable
	// and every worker would spin forever.
	base := n / workers
	extra := n % workers
	var arrived atomic.Int64
	var released atomic.Int64

	var wg sync.WaitGroup
	wg.Add(workers)
	rowStart := 0
	for w := 0; w < workers; w++ {
		rows := base
		if w < extra {
			rows++
		}
		rowEnd := rowStart + rows
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			fw.parallelWorker(rowStart, rowEnd, int64(workers), &arrived, &released)
		}(rowStart, rowEnd)
		rowStart = rowEnd
	}
	wg.Wait()
}

func (fw *FloydWarshallOptimized[W]) parallelWorker(rowStart, rowEnd int, workers int64, arrived, released *atomic.Int64) {
	n := fw.n
	inf := maxValue[W]()
	dist := fw.dist
	next := fw.next

	for k := 0; k < n; k++ {
		krow := k * n
		for i := rowStart; i < rowEnd; i++ {
			dik := dist[i*n+k]
			if dik == inf {
				continue
			}
			irow := i * n
			j := 0
			if fw.cfg.simd {
				for ; j+simdLane <= n; j += simdLane {
					for lane := 0; lane < simdLane; lane++ {
						jj := j + lane
						dkj := dist[krow+jj]
						if dkj == inf {
							continue
						}
						v := saturatingAdd(dik, dkj)
						if v < dist[irow+jj] {
							dist[irow+jj] = v
							next[irow+jj] = next[irow+k]
						}
					}
				}
			}
			for ; j < n; j++ {
				dkj := dist[krow+j]
				if dkj == inf {
					continue
				}
				v := saturatingAdd(dik, dkj)
				if v < dist[irow+j] {
					dist[irow+j] = v
					next[irow+j] = next[irow+k]
				}
			}
		}

		// Barrier: every worker must finish step k before any worker
		// proceeds to k+1, since row k may belong to another worker's
		// partition and must be fully settled before it is read as the
		// "through" row. released is keyed by round number (k+1), not by
		// the arrival order, so a worker never waits on a stale snapshot.
		gen := arrived.Add(1)
		if gen%workers == 0 {
			released.Store(int64(k) + 1)
		} else {
			target := int64(k) + 1
			for released.Load() < target {
				runtime.Gosched()
			}
		}
	}
}
