package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readGrid parses a grid file: one row per non-empty line, either
// whitespace-separated integers or one digit per cell ("01110").
// Lines starting with '#' are comments.
func readGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var row []int
		if fields := strings.Fields(text); len(fields) > 1 {
			for _, f := range fields {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("grid line %d: %w", line, err)
				}
				row = append(row, v)
			}
		} else {
			for _, ch := range text {
				if ch < '0' || ch > '9' {
					return nil, fmt.Errorf("grid line %d: unexpected %q", line, ch)
				}
				row = append(row, int(ch-'0'))
			}
		}
		grid = append(grid, row)
	}

	return grid, sc.Err()
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q: want x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}

	return x, y, nil
}
