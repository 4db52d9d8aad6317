// Package topogo computes persistence diagrams of point clouds and
// finite metric spaces by driving external filtration engines
// (Ripser-style Vietoris-Rips, GUDHI-style sparse Rips / Cech /
// Witness) and normalizing their per-sample output into one
// rectangular array.
//
// # Pipelines
//
// Each pipeline is configured through an immutable fluent builder and
// produces an estimator whose Transform method maps an engine call
// over every sample in parallel, then aligns the results:
//
//	est, err := topogo.VietorisRips(engine).
//	    HomologyDimensions(0, 1).
//	    Coeff(2).
//	    MaxEdgeLength(4).
//	    Workers(8).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	aligned, err := est.Transform(ctx, clouds)
//
// The output is a (samples, features, 3) array of [birth, death,
// dimension] triples, identical in shape for every sample of one
// call. Entries with birth == death are padding and carry no
// topological meaning.
//
// # Witness pipelines
//
// The Witness pipeline subsamples each point cloud into landmarks
// (random or maxmin rule, or a custom selector) and feeds the engine
// a nearest-landmark table instead of raw points:
//
//	est, err := topogo.Witness(engine).
//	    NLandmarks(20).
//	    Relaxation(0.5).
//	    Strong(false).
//	    Build()
//
// # Engines
//
// Topogo never constructs simplicial complexes itself. Anything
// implementing backend.Filtration can serve as the engine; see the
// backend package for the contract.
package topogo
