// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asm provides the closed-form local matrices of 2-node line
// (P1) elements and helpers to scatter them into a sparse triplet.
// These are the only quadratures the network discretisation needs.
package asm

import "github.com/cpmech/gosl/la"

// Mat2 is a local 2x2 element matrix
type Mat2 [2][2]float64

// Mass returns the consistent mass matrix scaled by c:
//  c·le·| 1/3  1/6 |
//       | 1/6  1/3 |
func Mass(c, le float64) Mat2 {
	a := c * le
	return Mat2{
		{a / 3.0, a / 6.0},
		{a / 6.0, a / 3.0},
	}
}

// MassLumped returns the lumped (diagonal) mass matrix scaled by c
func MassLumped(c, le float64) Mat2 {
	a := c * le / 2.0
	return Mat2{
		{a, 0},
		{0, a},
	}
}

// Advection returns ∫ φi dφj/ds scaled by the advective flux a at the
// element midpoint:
//  a·| -1/2  1/2 |
//    | -1/2  1/2 |
func Advection(a float64) Mat2 {
	h := a / 2.0
	return Mat2{
		{-h, h},
		{-h, h},
	}
}

// Diffusion returns the stiffness matrix of a diffusive term with
// coefficient d:
//  d/le·|  1  -1 |
//       | -1   1 |
func Diffusion(d, le float64) Mat2 {
	a := d / le
	return Mat2{
		{a, -a},
		{-a, a},
	}
}

// Add scatters the local matrix k into the triplet T at global rows
// (i0,i1) and columns (j0,j1)
func Add(T *la.Triplet, i0, i1, j0, j1 int, k Mat2) {
	T.Put(i0, j0, k[0][0])
	T.Put(i0, j1, k[0][1])
	T.Put(i1, j0, k[1][0])
	T.Put(i1, j1, k[1][1])
}

// AddNeg scatters -k into the triplet T
func AddNeg(T *la.Triplet, i0, i1, j0, j1 int, k Mat2) {
	T.Put(i0, j0, -k[0][0])
	T.Put(i0, j1, -k[0][1])
	T.Put(i1, j0, -k[1][0])
	T.Put(i1, j1, -k[1][1])
}

// AddT scatters the transpose of k into the triplet T
func AddT(T *la.Triplet, i0, i1, j0, j1 int, k Mat2) {
	T.Put(i0, j0, k[0][0])
	T.Put(i0, j1, k[1][0])
	T.Put(i1, j0, k[0][1])
	T.Put(i1, j1, k[1][1])
}

// AddNegT scatters -transpose(k) into the triplet T
func AddNegT(T *la.Triplet, i0, i1, j0, j1 int, k Mat2) {
	T.Put(i0, j0, -k[0][0])
	T.Put(i0, j1, -k[1][0])
	T.Put(i1, j0, -k[0][1])
	T.Put(i1, j1, -k[1][1])
}

// MulVec computes k times the local vector (v0,v1)
func (k Mat2) MulVec(v0, v1 float64) (r0, r1 float64) {
	r0 = k[0][0]*v0 + k[0][1]*v1
	r1 = k[1][0]*v0 + k[1][1]*v1
	return
}
