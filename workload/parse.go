package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseFile implements spec §6.2's grammar exactly: exactly one header
// line (`lca N`, `queries N`, or `con N`) must appear before any
// operation line; blank lines and lines starting with `c` are ignored
// anywhere; `i u v`/`d u v`/`d u`/`a u v`/`p u v` are the recognized
// operation lines. A repeated header, a line appearing before the
// header, or any other non-blank/non-comment line is ErrParse, wrapping
// the 1-indexed offending line number into the error text.
//
// Grounded on _examples/original_source/common/parse_input.cpp's
// read_query_file, reimplemented with bufio.Scanner + strconv instead of
// sscanf (idiomatic Go has no direct sscanf-with-partial-match analogue,
// and this five-keyword grammar does not warrant a parser-combinator
// dependency from the pack).
func ParseFile(r io.Reader) (n int, items []Item, err error) {
	scanner := bufio.NewScanner(r)
	headerSeen := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Header detection must precede the comment-line skip below: the
		// `con N` header form itself starts with `c` and would otherwise
		// be swallowed as a comment (spec §6.2; matches
		// parse_input.cpp's header sscanf preceding its line[0]=='c'
		// check).
		if v, ok := parseHeader(line); ok {
			if headerSeen {
				return 0, nil, fmt.Errorf("%w: line %d: repeated header %q", ErrParse, lineNo, line)
			}
			n = v
			headerSeen = true
			continue
		}

		if strings.HasPrefix(line, "c") {
			continue
		}

		if !headerSeen {
			return 0, nil, fmt.Errorf("%w: line %d: missing header before %q", ErrParse, lineNo, line)
		}

		item, ok := parseItem(line)
		if !ok {
			return 0, nil, fmt.Errorf("%w: line %d: cannot parse %q", ErrParse, lineNo, line)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if !headerSeen {
		return 0, nil, fmt.Errorf("%w: missing header line", ErrParse)
	}

	return n, items, nil
}

func parseHeader(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, false
	}
	switch fields[0] {
	case "lca", "queries", "con":
	default:
		return 0, false
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}

func parseItem(line string) (Item, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Item{}, false
	}
	ints := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Item{}, false
		}
		ints = append(ints, v)
	}

	switch fields[0] {
	case "i":
		if len(ints) != 2 {
			return Item{}, false
		}

		return Item{Type: Link, A: ints[0], B: ints[1], C: -1}, true
	case "d":
		switch len(ints) {
		case 2:
			return Item{Type: Cut, A: ints[0], B: ints[1], C: -1}, true
		case 1:
			return Item{Type: CutFromParent, A: ints[0], B: -1, C: -1}, true
		default:
			return Item{}, false
		}
	case "a":
		if len(ints) != 2 {
			return Item{}, false
		}

		return Item{Type: LCA, A: ints[0], B: ints[1], C: -1}, true
	case "p":
		if len(ints) != 2 {
			return Item{}, false
		}

		return Item{Type: Path, A: ints[0], B: ints[1], C: -1}, true
	default:
		return Item{}, false
	}
}
