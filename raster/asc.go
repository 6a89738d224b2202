package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ftoa renders a float with the shortest representation that round-trips
// exactly, keeping written grids bit-stable across runs.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// metaPath is the provenance sidecar location for a grid file.
func metaPath(path string) string { return path + ".meta.txt" }

// Write persists the grid as an ESRI ASCII file. Square cells emit the
// classic "cellsize" header; rectangular cells use the "dx"/"dy" variant.
// When the grid carries metadata, the lines are written to the
// "<path>.meta.txt" sidecar (the .asc layout has no comment field).
func (g *Grid) Write(path string) error {
	if err := g.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: write: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "ncols %d\n", g.Cols)
	fmt.Fprintf(w, "nrows %d\n", g.Rows)
	fmt.Fprintf(w, "xllcorner %s\n", ftoa(g.West))
	fmt.Fprintf(w, "yllcorner %s\n", ftoa(g.South()))
	if g.ResX == g.ResY {
		fmt.Fprintf(w, "cellsize %s\n", ftoa(g.ResX))
	} else {
		fmt.Fprintf(w, "dx %s\n", ftoa(g.ResX))
		fmt.Fprintf(w, "dy %s\n", ftoa(g.ResY))
	}
	fmt.Fprintf(w, "NODATA_value %s\n", ftoa(g.Nodata))

	for r := 0; r < g.Rows; r++ {
		for c, v := range g.Row(r) {
			if c > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(ftoa(v))
		}
		w.WriteByte('\n')
	}

	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("raster: write: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("raster: write: %w", err)
	}

	return g.writeMetadata(path)
}

func (g *Grid) writeMetadata(path string) error {
	if len(g.Metadata) == 0 {
		return nil
	}
	body := strings.Join(g.Metadata, "\n") + "\n"
	if err := os.WriteFile(metaPath(path), []byte(body), 0o644); err != nil {
		return fmt.Errorf("raster: write metadata: %w", err)
	}

	return nil
}

// Read loads an ESRI ASCII grid. Both the "cellsize" and the "dx"/"dy"
// header variants are accepted, as are xllcenter/yllcenter origins; header
// keywords are case-insensitive. A "<path>.meta.txt" sidecar, when present,
// is loaded into Metadata.
func Read(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: read: %w", err)
	}
	defer f.Close()

	g, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: read %s: %w", path, err)
	}

	if body, err := os.ReadFile(metaPath(path)); err == nil {
		trimmed := strings.TrimRight(string(body), "\n")
		if trimmed != "" {
			g.Metadata = strings.Split(trimmed, "\n")
		}
	}

	return g, nil
}

// decode parses the header token pairs and then exactly rows×cols values.
func decode(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	var (
		cols, rows = -1, -1

		xll, yll, cell, dx, dy float64

		haveCell, haveDX, haveDY bool
		haveXLL, haveYLL         bool
		centerX, centerY         bool

		nodata = float64(DefaultNodata)

		first     string
		haveFirst bool
	)

	scanValue := func(key string) (string, error) {
		if !sc.Scan() {
			return "", fmt.Errorf("%w: missing value for %q", ErrBadHeader, key)
		}
		return sc.Text(), nil
	}

header:
	for sc.Scan() {
		tok := sc.Text()
		key := strings.ToLower(tok)
		switch key {
		case "ncols", "nrows", "xllcorner", "xllcenter", "yllcorner", "yllcenter",
			"cellsize", "dx", "dy", "nodata_value":
			val, err := scanValue(key)
			if err != nil {
				return nil, err
			}
			if key == "ncols" || key == "nrows" {
				n, err := strconv.Atoi(val)
				if err != nil {
					return nil, fmt.Errorf("%w: %s %q", ErrBadHeader, key, val)
				}
				if key == "ncols" {
					cols = n
				} else {
					rows = n
				}
				continue
			}
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s %q", ErrBadHeader, key, val)
			}
			switch key {
			case "xllcorner":
				xll, haveXLL = v, true
			case "xllcenter":
				xll, haveXLL, centerX = v, true, true
			case "yllcorner":
				yll, haveYLL = v, true
			case "yllcenter":
				yll, haveYLL, centerY = v, true, true
			case "cellsize":
				cell, haveCell = v, true
			case "dx":
				dx, haveDX = v, true
			case "dy":
				dy, haveDY = v, true
			case "nodata_value":
				nodata = v
			}
		default:
			// First non-keyword token opens the data section.
			first, haveFirst = tok, true
			break header
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("raster: read header: %w", err)
	}

	if cols < 1 || rows < 1 || !haveXLL || !haveYLL {
		return nil, fmt.Errorf("%w: ncols/nrows/xllcorner/yllcorner are required", ErrBadHeader)
	}
	resX, resY := cell, cell
	switch {
	case haveCell:
	case haveDX && haveDY:
		resX, resY = dx, dy
	default:
		return nil, fmt.Errorf("%w: need cellsize or both dx and dy", ErrBadHeader)
	}

	cfg := Config{
		West:   xll,
		North:  yll + float64(rows)*resY,
		ResX:   resX,
		ResY:   resY,
		Rows:   rows,
		Cols:   cols,
		Nodata: nodata,
	}
	if centerX {
		cfg.West = xll - resX/2
	}
	if centerY {
		cfg.North = yll - resY/2 + float64(rows)*resY
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{Config: cfg, Values: make([]float64, 0, rows*cols)}
	appendValue := func(tok string) error {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("%w: value %q", ErrBadData, tok)
		}
		if len(g.Values) == rows*cols {
			return fmt.Errorf("%w: more than %d values", ErrBadData, rows*cols)
		}
		g.Values = append(g.Values, v)
		return nil
	}

	if haveFirst {
		if err := appendValue(first); err != nil {
			return nil, err
		}
	}
	for sc.Scan() {
		if err := appendValue(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("raster: read data: %w", err)
	}
	if len(g.Values) != rows*cols {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrBadData, len(g.Values), rows*cols)
	}

	return g, nil
}
