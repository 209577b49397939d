// Package sstable writes and reads count and probability tables in a
// sparse text form: a "rows,cols" header followed by one "r,c,value" line
// per non-zero cell.
package sstable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/machi-da/lda/matrix"
)

// serialize data to w
func Float64Serialize(m *matrix.Float64Matrix, w io.Writer) error {
	out := bufio.NewWriter(w)

	r, c := m.Shape()
	// write the matrix shape
	if _, err := fmt.Fprintf(out, "%d,%d\n", r, c); err != nil {
		return err
	}

	var val float64
	for ridx := 0; ridx < r; ridx += 1 {
		for cidx := 0; cidx < c; cidx += 1 {
			val = m.Get(ridx, cidx)
			if val != 0 { // only write out nonzero value
				if _, err := fmt.Fprintf(out, "%d,%d,%s\n", ridx, cidx,
					strconv.FormatFloat(val, 'e', -1, 64)); err != nil {
					return err
				}
			}
		}
	}
	return out.Flush()
}

// serialize data to file fn
func Float64SerializeFile(m *matrix.Float64Matrix, fn string) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := Float64Serialize(m, out); err != nil {
		out.Close()
		return fmt.Errorf("serialize %s: %w", fn, err)
	}
	return out.Close()
}

// deserialize data from r
func Float64Deserialize(r io.Reader) (*matrix.Float64Matrix, error) {
	lineIdx := 0
	var tmp *matrix.Float64Matrix

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		txt := scanner.Text()
		if lineIdx == 0 {
			shape := strings.Split(txt, ",")
			if len(shape) != 2 {
				return nil, fmt.Errorf("%w: shape not found: %s", ErrCorrupted, txt)
			}
			row, err := strconv.ParseUint(shape[0], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
			}
			col, err := strconv.ParseUint(shape[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
			}
			if row*col > maxCells {
				return nil, fmt.Errorf("%w: shape %dx%d too large", ErrCorrupted, row, col)
			}
			tmp = matrix.NewFloat64Matrix(int(row), int(col), 0)
			lineIdx += 1
			continue
		}

		value := strings.Split(txt, ",")
		if len(value) != 3 {
			log.Warningf("data corrupted, row %d, data %s", lineIdx, txt)
			lineIdx += 1
			continue
		}
		ridx, err := strconv.ParseUint(value[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
		}
		cidx, err := strconv.ParseUint(value[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
		}
		val, err := strconv.ParseFloat(value[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
		}
		nrow, ncol := tmp.Shape()
		if int(ridx) >= nrow || int(cidx) >= ncol {
			return nil, fmt.Errorf("%w: cell %d,%d outside %dx%d", ErrCorrupted, ridx, cidx, nrow, ncol)
		}
		tmp.Set(int(ridx), int(cidx), val)

		lineIdx += 1
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if tmp == nil {
		return nil, fmt.Errorf("%w: empty input", ErrCorrupted)
	}

	return tmp, nil
}

// deserialize data from file fn
func Float64DeserializeFile(fn string) (*matrix.Float64Matrix, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Float64Deserialize(file)
}
