// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package net

import "github.com/cpmech/gosl/chk"

// RegionMap maps boundary and junction vertices to mesh region ids and
// back. Region ids are allocated sequentially starting at the first id
// not taken by a branch; the map is built once by the topology builder
// and never mutated afterwards.
type RegionMap struct {
	next int         // next region id to allocate
	v2r  map[int]int // vertex id => region id
	r2v  map[int]int // region id => vertex id
}

// NewRegionMap returns a map whose first allocatable region id is firstEmpty
func NewRegionMap(firstEmpty int) *RegionMap {
	return &RegionMap{
		next: firstEmpty,
		v2r:  make(map[int]int),
		r2v:  make(map[int]int),
	}
}

// Alloc allocates a new region id for the vertex v
func (o *RegionMap) Alloc(v int) int {
	if r, ok := o.v2r[v]; ok {
		chk.Panic("vertex %d already holds region %d", v, r)
	}
	r := o.next
	if _, taken := o.r2v[r]; taken {
		chk.Panic("region id %d is already taken", r)
	}
	o.v2r[v] = r
	o.r2v[r] = v
	o.next++
	return r
}

// Region returns the region id allocated for vertex v
func (o *RegionMap) Region(v int) (r int, ok bool) {
	r, ok = o.v2r[v]
	return
}

// Vert returns the vertex holding region id r
func (o *RegionMap) Vert(r int) (v int, ok bool) {
	v, ok = o.r2v[r]
	return
}

// Len returns the number of allocated regions
func (o *RegionMap) Len() int { return len(o.v2r) }
