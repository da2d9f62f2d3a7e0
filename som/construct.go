// Package som - SOM-CH-NN tour construction.
//
// Steps:
//  1. Convex hull (best effort) of the points; its h vertices become fixed
//     cluster anchors, vertex j in cluster j.
//  2. Inputs: the h hull-edge midpoints, plus h approach points in the
//     evolutionary mode (Config.ApproachInputs).
//  3. Neurons: the inner points. Run trains them and assigns each to its
//     nearest input; that index is the point's cluster.
//  4. Chain: nearest-neighbour walk from a random point restricted to the
//     current cluster; an exhausted cluster hands over to cluster+1 mod k.
//
// A degenerate hull (collinear input) still yields k ≥ 1 inputs and every
// point is chained, so the result is always a Hamiltonian cycle.
//
// Complexity: O(n log n) hull, Run as documented, O(n·c) chaining with c
// the largest cluster.
package som

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/tsp"
)

const (
	approachMin = 3.0
	approachMax = 7.0
)

// Construct builds a SOM-CH-NN tour over points. genome may be nil; it is
// consumed.
func Construct(points []geom.Point, cfg Config, genome *logic.Stack, rng *rand.Rand) (geom.Tour, error) {
	if err := geom.ValidatePoints(points); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = tsp.NewRNG(cfg.Seed)
	}
	o := cfg.normalize()

	var (
		n       = len(points)
		hull    = tsp.ConvexHull(points)
		h       = len(hull)
		cluster = make([]int, n)
		onHull  = make(map[[2]float64]int, h)
		i       int
	)
	for i = range hull {
		onHull[hull[i].Key()] = i
	}

	inputs := hullInputs(hull, o.ApproachInputs, rng)
	if o.MaxIterations == 0 {
		o.MaxIterations = 2*len(inputs) + iterationBonus
	}
	if o.MaxDistance == 0 {
		o.MaxDistance = spread(inputs, points)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	var (
		neurons = make([]geom.Point, 0, n-h)
		inner   = make([]int, 0, n-h)
		j       int
		ok      bool
	)
	for i = range points {
		if j, ok = onHull[points[i].Key()]; ok {
			cluster[i] = j
			continue
		}
		neurons = append(neurons, points[i])
		inner = append(inner, i)
	}
	if len(neurons) > 0 {
		assign := run(inputs, neurons, o, genome, rng)
		for j = range assign {
			cluster[inner[j]] = assign[j].Cluster
		}
	}

	order := chain(points, cluster, len(inputs), rng.Intn(n))
	o.Logger.Debug("som-ch-nn: chained",
		slog.Int("n", n), slog.Int("hull", h), slog.Int("inputs", len(inputs)),
		slog.Int("iterations", o.MaxIterations), slog.Float64("max_distance", o.MaxDistance))
	return geom.FromOrder(order, points)
}

// hullInputs returns the edge midpoints, followed by the approach points
// when approach is set.
func hullInputs(hull []geom.Point, approach bool, rng *rand.Rand) []geom.Point {
	var (
		h   = len(hull)
		out = make([]geom.Point, 0, 2*h)
		i   int
		r   float64
		q   geom.Point
	)
	for _, e := range tsp.HullEdges(hull) {
		out = append(out, geom.Midpoint(e.From, e.To))
	}
	if !approach {
		return out
	}
	for i = 0; i < h; i++ {
		q = hull[(i+h/2)%h]
		r = approachMin + (approachMax-approachMin)*rng.Float64()
		out = append(out, geom.Pt((hull[i].X+q.X)/r+1, (hull[i].Y+q.Y)/r+1))
	}
	return out
}

// spread is the largest distance between two inputs, or the bounding-box
// diagonal of points when the inputs coincide.
func spread(inputs, points []geom.Point) float64 {
	var (
		best float64
		i, j int
		d    float64
	)
	for i = range inputs {
		for j = i + 1; j < len(inputs); j++ {
			if d = geom.Distance(inputs[i], inputs[j]); d > best {
				best = d
			}
		}
	}
	if best > 0 {
		return best
	}
	var minX, minY, maxX, maxY = math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for i = range points {
		minX, maxX = math.Min(minX, points[i].X), math.Max(maxX, points[i].X)
		minY, maxY = math.Min(minY, points[i].Y), math.Max(maxY, points[i].Y)
	}
	return math.Hypot(maxX-minX, maxY-minY)
}

// chain walks nearest neighbours inside the current cluster and returns
// the visiting order. cluster values must lie in [0,k).
func chain(points []geom.Point, cluster []int, k, start int) []int {
	var n = len(points)
	members := make([][]int, k)
	var i int
	for i = range points {
		members[cluster[i]] = append(members[cluster[i]], i)
	}

	var (
		visited = make([]bool, n)
		order   = make([]int, 1, n)
		left    = make([]int, k)
		cur     = start
		cl      = cluster[start]
		next    int
		best    float64
		d       float64
	)
	for i = range members {
		left[i] = len(members[i])
	}
	order[0] = start
	visited[start] = true
	left[cl]--

	for len(order) < n {
		if left[cl] == 0 {
			cl = (cl + 1) % k
			continue
		}
		next, best = -1, math.Inf(1)
		for _, i = range members[cl] {
			if visited[i] {
				continue
			}
			if d = geom.DistanceSquared(points[cur], points[i]); d < best {
				best, next = d, i
			}
		}
		visited[next] = true
		left[cl]--
		order = append(order, next)
		cur = next
	}
	return order
}
