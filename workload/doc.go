// Package workload defines the textual operation grammar of spec §6.2
// and its parser: one header line (lca/queries/con N), then i/d/a/p
// operation lines, blank and c-prefixed lines ignored. Grounded on
// _examples/original_source/common/parse_input.cpp's read_query_file.
package workload
