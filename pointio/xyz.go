package pointio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/natgrid/cloud"
)

// xyzSeparators splits on any run of whitespace, commas, or semicolons, so
// "1,2,3", "1; 2; 3", and "1 2 3" all parse the same way.
func xyzSeparators(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// ReadXYZ loads a plain-text column file into a sample cloud. Each data
// line holds at least three columns — x, y, value — and extra columns are
// ignored. Empty lines and lines starting with '#' are skipped, and a
// single leading header line ("x y z") is tolerated; any later unparseable
// line is ErrBadRecord with its line number.
func ReadXYZ(path string) (cloud.Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointio: open xyz: %w", err)
	}
	defer f.Close()

	var c cloud.Cloud
	sc := bufio.NewScanner(f)
	lineNo, headerSkipped := 0, false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.FieldsFunc(line, xyzSeparators)
		sample, err := parseXYZ(cols)
		if err != nil {
			// The first content line may be a column header.
			if len(c) == 0 && !headerSkipped {
				headerSkipped = true

				continue
			}

			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineNo, err)
		}

		c = append(c, sample)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointio: read xyz: %w", err)
	}

	return c, nil
}

func parseXYZ(cols []string) (cloud.Sample, error) {
	if len(cols) < 3 {
		return cloud.Sample{}, fmt.Errorf("want at least 3 columns, got %d", len(cols))
	}

	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(cols[i], 64)
		if err != nil {
			return cloud.Sample{}, fmt.Errorf("column %d: %q", i+1, cols[i])
		}
		vals[i] = v
	}

	return cloud.Sample{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
