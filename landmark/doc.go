// Package landmark selects landmark points and builds the ordered
// nearest-landmark table that drives Witness-complex engines.
//
// A landmark set is a small subsample of a point cloud. For every
// point ("witness") the table lists all landmarks sorted by ascending
// distance; the Witness engine consumes the table as-is and applies
// its own relaxation, so no truncation happens here.
package landmark
