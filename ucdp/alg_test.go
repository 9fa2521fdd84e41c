// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"reflect"
	"testing"
)

func TestFilterInPlace(t *testing.T) {
	for _, test := range []struct {
		input, want []int
	}{
		{[]int{}, []int{}},
		{[]int{1, 2, 3, 4}, []int{2, 4}},
		{[]int{2, 4}, []int{2, 4}},
		{[]int{1, 3}, []int{}},
	} {
		got := FilterInPlace(append([]int{}, test.input...), func(x int) bool { return x%2 == 0 })
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("FilterInPlace(%v) = %v; want %v", test.input, got, test.want)
		}
	}
}
