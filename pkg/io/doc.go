// Package io provides JSON import of programs and export of arrangement
// sets.
//
// The scheduling core neither parses source documents nor produces
// final export formats; both live with external collaborators. JSON is
// the neutral interchange representation between them and the core:
//
//   - Import: an ordered item list, with actor tags already extracted
//     and kinds already classified by the external parser.
//   - Export: the generated arrangements with their diagnostic counters
//     and status, stamped with a run ID, ready for an external exporter
//     to turn into whatever document format the consumer wants.
//
// # Input format
//
//	{
//	  "items": [
//	    {"id": 1, "name": "Opening", "kind": "performance",
//	     "actors": [{"name": "Volkov", "tags": ["early"]}],
//	     "kv": false, "fixed": true}
//	  ]
//	}
package io
