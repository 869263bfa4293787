// Package wire implements the line-oriented text formats used between a
// route-planning front end and the shortest-path backend.
//
// Request (stdin of the backend), blank lines ignored:
//
//	V E
//	<city 1>
//	…
//	<city V>
//	<from> <to> <weight>    (E lines)
//	<source city>
//
// City names are single whitespace-free tokens.
//
// Response (stdout of the backend) is either the distance table
//
//	Source City: A
//	------------------------------------
//	A               0
//	B               INF
//	------------------------------------
//
// optionally followed by one "Path to …" line per destination, or the single
// line "Warning: Graph contains negative weight cycle!".
//
// The package also parses the front end's distance matrix (ParseMatrix) and
// exports results and roads as CSV.
package wire
