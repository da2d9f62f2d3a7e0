// Package som implements the self-organizing map used to cluster inner
// points around a convex hull, and the SOM-CH-NN tour constructor built on
// top of it.
//
// Run moves a set of neurons toward a set of fixed inputs:
//
//	INIT → ITERATE × MaxIterations → CLASSIFY
//
// One iteration samples an input uniformly, finds its best matching unit
// (BMU, the nearest neuron by squared distance) and pulls every neuron
// toward the sampled input by LearningRate·weight/100 of the remaining
// distance. Neurons within MaxDistance/10 of the BMU get weight
// 100·(1 − d/(MaxDistance/10)), so the BMU itself moves by exactly
// LearningRate; every other neuron gets FarWeight. When a genome is given,
// each neuron then pops one rule ID and applies the matching logic.Fragment
// over the field neurons ∪ inputs. After each phase an anti-collision pass
// separates coincident neurons and lifts neurons off inputs by a random
// epsilon in [1e-8, 2e-8].
//
// CLASSIFY assigns every neuron to its nearest input.
//
// Construct (SOM-CH-NN) uses the midpoints of the hull edges as inputs and
// the inner points as neurons. Hull vertex j belongs to cluster j; inner
// points take their SOM cluster. A nearest-neighbour walk then chains the
// points cluster by cluster, moving to cluster+1 (mod k) whenever the
// current one is exhausted. The tour is made of the original points.
//
// The engine is sequential; one *rand.Rand drives every draw.
package som
