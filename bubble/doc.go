// Package bubble builds, from a set of superbubble.Pair boundaries, a
// per-node map of the distance from that node to each enclosing bubble's
// exit. The aligner consults this map as a lower-bound admissible heuristic:
// a state can never finish cheaper than costmodel.MinRemainingCost computed
// against its nearest enclosing exit's distance.
//
// A node inside nested bubbles carries one Entry per enclosing bubble, the
// way a stack of open bubbles would be threaded through a single backward
// walk; the aligner uses the smallest recorded distance (MinDistToExit).
package bubble
