package sstable

import "errors"

var ErrCorrupted = errors.New("sstable: table corrupted")

// largest table a header may announce, in cells
const maxCells = 1 << 30
