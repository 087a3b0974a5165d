// Package netdata loads persisted network fixtures: edge lists, coordinate
// lists, and reference ring-size lists, in the whitespace- or
// comma-delimited formats produced by network analysis pipelines.
//
// Lines starting with '#' and blank lines are skipped in every format.
// Fields may be separated by whitespace, commas, or both.
package netdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/halden/ringtrace/shape"
)

// ErrBadRecord indicates a fixture line that does not match its format.
var ErrBadRecord = errors.New("netdata: malformed record")

// ReadEdgeList parses one edge per line: two node ids, "u v" or "u, v".
func ReadEdgeList(r io.Reader) ([][2]int64, error) {
	var edges [][2]int64
	err := scan(r, func(lineno int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrBadRecord, lineno, len(fields))
		}
		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineno, err)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineno, err)
		}
		edges = append(edges, [2]int64{u, v})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return edges, nil
}

// ReadCoords parses one coordinate per line. Two fields "x y" assign node
// ids by position (0, 1, 2, …); three fields "id x y" use the leading id.
// The two conventions must not be mixed within one file.
func ReadCoords(r io.Reader) (shape.Coords, error) {
	coords := make(shape.Coords)
	next := int64(0)
	width := 0
	err := scan(r, func(lineno int, fields []string) error {
		if width == 0 {
			width = len(fields)
		}
		if len(fields) != width || (width != 2 && width != 3) {
			return fmt.Errorf("%w: line %d: want %d fields, got %d", ErrBadRecord, lineno, width, len(fields))
		}

		id := next
		if width == 3 {
			parsed, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineno, err)
			}
			id = parsed
			fields = fields[1:]
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineno, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineno, err)
		}
		coords[id] = r2.Vec{X: x, Y: y}
		next++

		return nil
	})
	if err != nil {
		return nil, err
	}

	return coords, nil
}

// ReadRingSizes parses a reference ring list: one ring per line, its size
// implied by the number of node tokens on the line.
func ReadRingSizes(r io.Reader) ([]int, error) {
	var sizes []int
	err := scan(r, func(lineno int, fields []string) error {
		sizes = append(sizes, len(fields))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sizes, nil
}

// SizeHistogram folds a ring-size list into per-size counts, the form the
// regression comparisons use.
func SizeHistogram(sizes []int) map[int]int {
	hist := make(map[int]int)
	for _, s := range sizes {
		hist[s]++
	}

	return hist
}

// scan feeds each data line's fields to fn, normalizing commas to spaces
// and skipping comments and blanks.
func scan(r io.Reader, fn func(lineno int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if err := fn(lineno, fields); err != nil {
			return err
		}
	}

	return sc.Err()
}
