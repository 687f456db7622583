// Package units parses and formats the angular sizes and world coordinates
// exchanged with the CARTA frontend.
//
// Two process-wide registries are built once, at package initialisation,
// from static tables:
//
//   - the size unit registry maps every accepted unit token ("deg", "'",
//     "arcsec", "mas", ...) to exactly one SizeUnit;
//   - the notation registry maps every NumberFormat (decimal degrees, HMS,
//     DMS) to the Notation that parses it.
//
// Both registries are read-only afterwards, so every function in this
// package is safe for concurrent use. Parsing never mutates anything: each
// call returns a fresh value.
//
// Canonical string forms are the wire contract with the frontend:
//
//	4.5"        arcseconds (also used for mas and µas, scaled)
//	30'         arcminutes
//	2deg        degrees
//	123.5       decimal degree coordinate
//	12:34:56.7  sexagesimal coordinate
//
// Parse failures are returned as *ParseError values that wrap
// ErrUnrecognizedFormat or ErrOutOfRange.
package units
