// Package dfs provides depth-first exploration over an unweighted adjacency
// structure: iterative and recursive traversals with identical visit order,
// exhaustive simple-path enumeration, cycle detection and topological sort.
//
// The iterative traversal pushes neighbors onto its explicit stack in
// reverse adjacency order, so pop order matches the natural
// first-neighbor-first order of the recursive variant; that reversal is what
// keeps the two variants output-equivalent and must be preserved.
//
// DetectCycle reports the first back-edge found together with the cyclic
// node sequence; TopologicalSort refuses cyclic graphs with a *CycleError
// wrapping ErrCycleDetected. Full-graph scans start from the sorted key set,
// so results are deterministic.
package dfs
