// Package builder generates deterministic fixture graphs for tests,
// benchmarks and the command-line tool.
//
// Every generator is a Constructor applied by BuildGraph to a fresh
// *core.Graph[string]; node payloads are labels produced by the configured
// ID scheme. Options are functional:
//
//   - Label schemes (IDFn): DefaultIDFn "0","1",...; SymbolIDFn "A".."Z";
//     ExcelColumnIDFn "A",...,"AA"; SymbolNumberIDFn "v0","v1",...
//   - Weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn, ExponentialWeightFn. All yield weights ≥ 0.
//   - Randomness: WithSeed / WithRand. Stochastic generators fail with
//     ErrNeedRandSource when no RNG is configured.
//   - Direction: WithDirected(true) adds one-way edges for Path, Cycle,
//     Complete and RandomSparse. Star and Grid stay two-way.
//
// Option constructors panic on nil functions and out-of-domain parameters.
// Constructors return sentinel errors wrapped with their name, e.g.
// "Path: n=1 < min=2: builder: parameter too small".
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithRepresentation(core.AdjacencyMatrix)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//		builder.Grid(4, 4),
//	)
package builder
