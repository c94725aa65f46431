package blas

// referenceKernels returns the portable kernel table for one element kind.
func referenceKernels[T Real]() kernels[T] {
	return kernels[T]{
		dot:  refDot[T],
		axpy: refAxpy[T],
		scal: refScal[T],
		copy: refCopy[T],
		gemv: refGemv[T],
		gbmv: refGbmv[T],
		spmv: refSpmv[T],
		tpmv: refTpmv[T],
		tpsv: refTpsv[T],
	}
}

func refDot[T Real](n int, x []T, incx int, y []T, incy int) T {
	var s0, s1, s2, s3 T
	i := 0
	if incx == 1 && incy == 1 {
		for ; i+4 <= n; i += 4 {
			s0 += x[i] * y[i]
			s1 += x[i+1] * y[i+1]
			s2 += x[i+2] * y[i+2]
			s3 += x[i+3] * y[i+3]
		}
	}
	for ; i < n; i++ {
		s0 += x[i*incx] * y[i*incy]
	}
	return s0 + s1 + s2 + s3
}

func refAxpy[T Real](n int, alpha T, x []T, incx int, y []T, incy int) {
	if alpha == 0 {
		return
	}
	i := 0
	if incx == 1 && incy == 1 {
		for ; i+4 <= n; i += 4 {
			y[i] += alpha * x[i]
			y[i+1] += alpha * x[i+1]
			y[i+2] += alpha * x[i+2]
			y[i+3] += alpha * x[i+3]
		}
	}
	for ; i < n; i++ {
		y[i*incy] += alpha * x[i*incx]
	}
}

func refScal[T Real](n int, alpha T, x []T, incx int) {
	for i := 0; i < n; i++ {
		x[i*incx] *= alpha
	}
}

func refCopy[T Real](n int, x []T, incx int, y []T, incy int) {
	if incx == 1 && incy == 1 {
		copy(y[:n], x[:n])
		return
	}
	for i := 0; i < n; i++ {
		y[i*incy] = x[i*incx]
	}
}

// scaleOut applies the beta factor to the output vector. beta == 0
// overwrites, so NaN or Inf never leaks out of an uninitialized output.
func scaleOut[T Real](n int, beta T, y []T, incy int) {
	switch beta {
	case 1:
	case 0:
		for i := 0; i < n; i++ {
			y[i*incy] = 0
		}
	default:
		refScal(n, beta, y, incy)
	}
}

func refGemv[T Real](t Transpose, m, n int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int) {
	if t == NoTrans {
		scaleOut(m, beta, y, incy)
		for i := 0; i < m; i++ {
			y[i*incy] += alpha * refDot(n, a[i*lda:], 1, x, incx)
		}
		return
	}
	scaleOut(n, beta, y, incy)
	for i := 0; i < m; i++ {
		refAxpy(n, alpha*x[i*incx], a[i*lda:], 1, y, incy)
	}
}

// refGbmv stores element (i,j) of the band matrix at a[i*lda+j-i+kl],
// matching the row-major band layout of the accelerated backend.
func refGbmv[T Real](t Transpose, m, n, kl, ku int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int) {
	lenY := m
	if t == Trans {
		lenY = n
	}
	scaleOut(lenY, beta, y, incy)
	for i := 0; i < m; i++ {
		jmin := max(0, i-kl)
		jmax := min(n-1, i+ku)
		for j := jmin; j <= jmax; j++ {
			v := a[i*lda+j-i+kl]
			if t == NoTrans {
				y[i*incy] += alpha * v * x[j*incx]
			} else {
				y[j*incy] += alpha * v * x[i*incx]
			}
		}
	}
}

// packed lower-triangular offset of row i: elements (i,0)..(i,i) start at
// i*(i+1)/2.
func tpRow(i int) int {
	return i * (i + 1) / 2
}

func refSpmv[T Real](n int, alpha T, ap, x []T, incx int, beta T, y []T, incy int) {
	scaleOut(n, beta, y, incy)
	for i := 0; i < n; i++ {
		row := tpRow(i)
		y[i*incy] += alpha * ap[row+i] * x[i*incx]
		for j := 0; j < i; j++ {
			v := alpha * ap[row+j]
			y[i*incy] += v * x[j*incx]
			y[j*incy] += v * x[i*incx]
		}
	}
}

func refTpmv[T Real](t Transpose, n int, ap, x []T, incx int) {
	if t == NoTrans {
		// Row i reads x[0..i]; descending order keeps them unclobbered.
		for i := n - 1; i >= 0; i-- {
			var sum T
			row := tpRow(i)
			for j := 0; j <= i; j++ {
				sum += ap[row+j] * x[j*incx]
			}
			x[i*incx] = sum
		}
		return
	}
	// op(A) is upper triangular: row i reads x[i..n-1].
	for i := 0; i < n; i++ {
		sum := ap[tpRow(i)+i] * x[i*incx]
		for j := i + 1; j < n; j++ {
			sum += ap[tpRow(j)+i] * x[j*incx]
		}
		x[i*incx] = sum
	}
}

func refTpsv[T Real](t Transpose, n int, ap, x []T, incx int) {
	if t == NoTrans {
		// Forward substitution.
		for i := 0; i < n; i++ {
			row := tpRow(i)
			v := x[i*incx]
			for j := 0; j < i; j++ {
				v -= ap[row+j] * x[j*incx]
			}
			x[i*incx] = v / ap[row+i]
		}
		return
	}
	// Back substitution against the transposed (upper) system.
	for i := n - 1; i >= 0; i-- {
		v := x[i*incx]
		for j := i + 1; j < n; j++ {
			v -= ap[tpRow(j)+i] * x[j*incx]
		}
		x[i*incx] = v / ap[tpRow(i)+i]
	}
}

func refGemvSparse[T Real](t Transpose, m, n int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int) {
	if t == NoTrans {
		scaleOut(m, beta, y, incy)
		for j := 0; j < n; j++ {
			if xj := x[j*incx]; xj != 0 {
				refAxpy(m, alpha*xj, a[j:], lda, y, incy)
			}
		}
		return
	}
	scaleOut(n, beta, y, incy)
	for i := 0; i < m; i++ {
		if xi := x[i*incx]; xi != 0 {
			refAxpy(n, alpha*xi, a[i*lda:], 1, y, incy)
		}
	}
}
