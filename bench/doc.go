// Package bench measures the wall-clock cost of running a recorded
// workload (package workload) against a core.Engine, repeat times over
// fresh engine instances, and renders the result as plain text or as the
// single-line JSON object spec §6.3 requires. It is the library half of
// cmd/dynaforest's `bench` subcommand.
package bench
