// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import "fmt"

// The label functions below recode the dataset's numeric codes into
// human-readable categories. They never fail: a code outside the
// documented range maps to an "unknown" sentinel so a new dataset
// release cannot halt an analysis.

// DatePrecisionLabels gives the five date precision categories in
// increasing order of uncertainty. DatePrecisionLabels[code-1] is
// the label for code.
var DatePrecisionLabels = []string{
	"exact day",
	"2-6 day range",
	"week known",
	"month known",
	"year only",
}

// DatePrecisionLabel returns the label for an event date precision
// code.
func DatePrecisionLabel(code int) string {
	if code < 1 || code > len(DatePrecisionLabels) {
		return unknown(code)
	}
	return DatePrecisionLabels[code-1]
}

// IncompatibilityLabel returns the label for a conflict
// incompatibility code.
func IncompatibilityLabel(code int) string {
	switch code {
	case 1:
		return "territory"
	case 2:
		return "government"
	case 3:
		return "government and territory"
	}
	return unknown(code)
}

// IntensityLabel returns the label for a conflict-year intensity
// code. "war" means at least 1,000 battle-related deaths in the
// year.
func IntensityLabel(code int) string {
	switch code {
	case 1:
		return "minor"
	case 2:
		return "war"
	}
	return unknown(code)
}

// ConflictTypeLabel returns the label for a conflict type code.
func ConflictTypeLabel(code int) string {
	switch code {
	case 1:
		return "extrasystemic"
	case 2:
		return "interstate"
	case 3:
		return "intrastate"
	case 4:
		return "internationalized intrastate"
	}
	return unknown(code)
}

// ViolenceTypeLabel returns the label for an event violence type
// code.
func ViolenceTypeLabel(code int) string {
	switch code {
	case 1:
		return "state-based"
	case 2:
		return "non-state"
	case 3:
		return "one-sided"
	}
	return unknown(code)
}

func unknown(code int) string {
	return fmt.Sprintf("unknown (%d)", code)
}
