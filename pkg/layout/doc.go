// Package layout provides the graph types and individual transforms that
// make up a layered layout pass.
//
// # Overview
//
// The central type is [Graph], a compound directed multigraph whose node and
// edge labels carry layout state (ranks, orders, coordinates, dummy node
// bookkeeping). The package exposes each transform of the pipeline as a
// standalone function so they can be tested and reused independently:
//
//   - [MakeSpaceForEdgeLabels], [InjectEdgeLabelProxies]: reserve room for
//     edge labels before ranking
//   - [RunNesting], [CleanupNesting]: encode cluster containment as ranking
//     constraints
//   - [NormalizeEdges], [DenormalizeEdges]: replace multi-rank edges with
//     unit-length dummy chains and collapse them back into edge points
//   - [AssignDummyChainParents]: reparent dummy chains into the clusters
//     they pass through
//   - [AddBorderSegments], [RemoveBorderNodes]: materialize cluster borders
//     as nodes so ordering and positioning keep clusters contiguous
//   - [RemoveSelfEdges], [InsertSelfEdges], [PositionSelfEdges]: route self
//     loops beside their node
//   - [AdjustCoordinateSystem], [UndoCoordinateSystem]: lay out in a single
//     canonical direction and transform to the requested rank direction
//   - [Translate], [AssignNodeIntersects], [FixupEdgeLabelCoords]: final
//     margins and edge endpoint clipping
//
// The heavier algorithms live in subpackages: acyclic (cycle breaking),
// rank (layer assignment), order (crossing reduction), and position
// (coordinate assignment). The pipeline package sequences everything; most
// callers should use it rather than invoking transforms directly.
package layout
