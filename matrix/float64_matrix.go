package matrix

// Float64Matrix is a dense count table. A float64 slice is used as the
// underlying storage and the data layout is in row major order, i.e. the
// (i*c + j)-th element in the data slice is the [i, j]-th element in the
// matrix. Vector is defined as a matrix with one column.
type Float64Matrix struct {
	nrow int
	ncol int
	data []float64
}

// NewFloat64Matrix creates a new Float64Matrix with r rows and c columns,
// every element set to fill. Zero rows or columns are allowed, negative
// dimensions panic.
func NewFloat64Matrix(r, c int, fill float64) *Float64Matrix {
	if r < 0 || c < 0 {
		panic(ErrBadShape)
	}
	data := make([]float64, r*c)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return &Float64Matrix{
		nrow: r,
		ncol: c,
		data: data,
	}
}

// get the shape of the matrix
func (m *Float64Matrix) Shape() (int, int) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Float64Matrix) Get(r, c int) float64 {
	if r < 0 || c < 0 || r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol+c]
}

// set val to the [r, c]-th element of the matrix
func (m *Float64Matrix) Set(r, c int, val float64) {
	if r < 0 || c < 0 || r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] = val
}

// increment the [r, c]-th element of the matrix by val
func (m *Float64Matrix) Incr(r, c int, val float64) {
	if r < 0 || c < 0 || r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] += val
}

// decrement the [r, c]-th element of the matrix by val
func (m *Float64Matrix) Decr(r, c int, val float64) {
	if r < 0 || c < 0 || r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] -= val
}

// get a copy of the r-th row of the matrix
func (m *Float64Matrix) Row(r int) []float64 {
	if r < 0 || r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	row := make([]float64, m.ncol)
	copy(row, m.data[r*m.ncol:(r+1)*m.ncol])
	return row
}

// get a copy of the c-th column of the matrix
func (m *Float64Matrix) Col(c int) []float64 {
	if c < 0 || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	column := make([]float64, m.nrow)
	for r := 0; r < m.nrow; r += 1 {
		column[r] = m.data[r*m.ncol+c]
	}
	return column
}

// Values returns a copy of the underlying row major data.
func (m *Float64Matrix) Values() []float64 {
	values := make([]float64, len(m.data))
	copy(values, m.data)
	return values
}

// Clone returns a deep copy of the matrix.
func (m *Float64Matrix) Clone() *Float64Matrix {
	return &Float64Matrix{
		nrow: m.nrow,
		ncol: m.ncol,
		data: m.Values(),
	}
}
