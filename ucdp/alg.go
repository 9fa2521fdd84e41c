// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

// FilterInPlace filters xs to the elements for which keep returns
// true, reusing the storage of xs.
func FilterInPlace[T any](xs []T, keep func(x T) bool) []T {
	j := 0
	for i := range xs {
		if keep(xs[i]) {
			if i != j {
				xs[j] = xs[i]
			}
			j++
		}
	}
	return xs[:j]
}
