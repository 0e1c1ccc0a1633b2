// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tissue discretises the interstitial Darcy problem on a
// uniform node-centred grid over the tissue cube. The resulting
// stencil is a constant block of the monolithic system; the package
// also provides the trilinear interpolation weights coupling tissue
// nodes to points of the immersed vessel network.
package tissue

import (
	"github.com/cpmech/gosl/chk"
)

// Putter receives sparse matrix entries; la.Triplet satisfies it
type Putter interface {
	Put(i, j int, x float64)
}

// Grid holds the uniform tissue grid
type Grid struct {
	N    [3]int     // cells per direction
	L    [3]float64 // side lengths
	H    [3]float64 // cell sizes
	Nn   [3]int     // nodes per direction
	Nnod int        // total number of nodes (tissue pressure dofs)
}

// NewGrid returns a grid with n cells per direction over a box of
// side lengths l
func NewGrid(n [3]int, l [3]float64) (o *Grid) {
	o = new(Grid)
	for d := 0; d < 3; d++ {
		if n[d] < 1 || l[d] <= 0 {
			chk.Panic("grid must have at least 1 cell and positive lengths per direction: n=%v l=%v", n, l)
		}
		o.N[d] = n[d]
		o.L[d] = l[d]
		o.H[d] = l[d] / float64(n[d])
		o.Nn[d] = n[d] + 1
	}
	o.Nnod = o.Nn[0] * o.Nn[1] * o.Nn[2]
	return
}

// Index returns the dof index of node (i,j,k)
func (o *Grid) Index(i, j, k int) int {
	return i + o.Nn[0]*(j+o.Nn[1]*k)
}

// Coords returns the coordinates of the node with dof index idx
func (o *Grid) Coords(idx int) (x, y, z float64) {
	i := idx % o.Nn[0]
	j := (idx / o.Nn[0]) % o.Nn[1]
	k := idx / (o.Nn[0] * o.Nn[1])
	return float64(i) * o.H[0], float64(j) * o.H[1], float64(k) * o.H[2]
}

// width returns the control-volume width of node i along direction d
// (half a cell at the boundary nodes)
func (o *Grid) width(i, d int) float64 {
	if i == 0 || i == o.N[d] {
		return o.H[d] / 2.0
	}
	return o.H[d]
}

// Vol returns the control volume of the node with dof index idx
func (o *Grid) Vol(idx int) float64 {
	i := idx % o.Nn[0]
	j := (idx / o.Nn[0]) % o.Nn[1]
	k := idx / (o.Nn[0] * o.Nn[1])
	return o.width(i, 0) * o.width(j, 1) * o.width(k, 2)
}

// NnzStencil returns an upper bound on the number of nonzeros of the
// Darcy stencil (7-point) plus the diagonal sink
func (o *Grid) NnzStencil() int { return 8 * o.Nnod }

// AssembleDarcy puts the finite-volume Darcy stencil with conductivity
// kt and the linear sink coefficient qlf into T, shifted by the row and
// column offset off. The boundary faces are sealed (zero normal flux);
// with qlf == 0 the well-posedness of the monolithic system relies on
// the vessel exchange term.
func (o *Grid) AssembleDarcy(T Putter, off int, kt, qlf float64) {
	for k := 0; k < o.Nn[2]; k++ {
		for j := 0; j < o.Nn[1]; j++ {
			for i := 0; i < o.Nn[0]; i++ {
				a := o.Index(i, j, k)

				// sink
				if qlf != 0 {
					T.Put(off+a, off+a, qlf*o.Vol(a))
				}

				// faces towards the next node along each direction
				if i+1 < o.Nn[0] {
					g := kt * o.width(j, 1) * o.width(k, 2) / o.H[0]
					b := o.Index(i+1, j, k)
					o.putPair(T, off, a, b, g)
				}
				if j+1 < o.Nn[1] {
					g := kt * o.width(i, 0) * o.width(k, 2) / o.H[1]
					b := o.Index(i, j+1, k)
					o.putPair(T, off, a, b, g)
				}
				if k+1 < o.Nn[2] {
					g := kt * o.width(i, 0) * o.width(j, 1) / o.H[2]
					b := o.Index(i, j, k+1)
					o.putPair(T, off, a, b, g)
				}
			}
		}
	}
}

func (o *Grid) putPair(T Putter, off, a, b int, g float64) {
	T.Put(off+a, off+a, g)
	T.Put(off+a, off+b, -g)
	T.Put(off+b, off+b, g)
	T.Put(off+b, off+a, -g)
}

// InterpWeights returns the 8 node dofs and trilinear weights
// interpolating the tissue field at point (x,y,z). Points outside the
// box are clamped to the closest boundary cell.
func (o *Grid) InterpWeights(x, y, z float64) (nodes [8]int, w [8]float64) {
	c := [3]float64{x, y, z}
	var i0 [3]int
	var f [3]float64
	for d := 0; d < 3; d++ {
		t := c[d] / o.H[d]
		i := int(t)
		if i < 0 {
			i = 0
		}
		if i > o.N[d]-1 {
			i = o.N[d] - 1
		}
		i0[d] = i
		f[d] = t - float64(i)
		if f[d] < 0 {
			f[d] = 0
		}
		if f[d] > 1 {
			f[d] = 1
		}
	}
	n := 0
	for dk := 0; dk < 2; dk++ {
		for dj := 0; dj < 2; dj++ {
			for di := 0; di < 2; di++ {
				nodes[n] = o.Index(i0[0]+di, i0[1]+dj, i0[2]+dk)
				wx := 1 - f[0]
				if di == 1 {
					wx = f[0]
				}
				wy := 1 - f[1]
				if dj == 1 {
					wy = f[1]
				}
				wz := 1 - f[2]
				if dk == 1 {
					wz = f[2]
				}
				w[n] = wx * wy * wz
				n++
			}
		}
	}
	return
}
