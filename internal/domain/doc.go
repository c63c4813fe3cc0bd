// Package domain contains the core domain entities and value objects for beltsort.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (I/O, encoding, logging) and
// contains only the routing rules of the sorting line.
//
// # Entities
//
//   - [ObjectColor]: the color category assigned to an incoming plastic object
//   - [ConveyorBelt]: the transport lane that receives one category
//   - [TableEntry]: one row of the fixed routing table
//
// # Routing Table
//
// The table is total and static:
//
//	black       -> A
//	transparent -> B
//	colorful    -> C
//
// Anything outside the three colors fails with [ErrUnrecognizedCategory].
// The router never guesses a belt.
package domain
