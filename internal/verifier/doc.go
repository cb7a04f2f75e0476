// Package verifier replays a move sequence on a fresh board and reports the first illegal move.
//
// The verifier has two states: it is verifying until a move is rejected or the sequence
// runs out, and then it is terminated. It never retries, backtracks or applies a move
// speculatively; the rules engine is the sole judge of legality, and a malformed move is
// reported exactly like an illegal one.
package verifier
