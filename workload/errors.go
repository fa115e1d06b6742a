package workload

import "errors"

// ErrParse indicates the workload file does not conform to spec §6.2's
// grammar: a repeated header, a line before any header, or any non-blank,
// non-comment, non-operation line.
var ErrParse = errors.New("workload: parse error")

// ErrIO indicates the workload source could not be read.
var ErrIO = errors.New("workload: cannot read source")
