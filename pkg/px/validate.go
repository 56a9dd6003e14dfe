// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"cmp"
	"regexp"
	"slices"
)

// Always returns a validator that accepts every value. It is the default
// validator of Value and MultiValue.
func Always[T any]() func(T) bool {
	return func(T) bool { return true }
}

// Range returns a validator accepting values in the closed interval [lo, hi].
func Range[T cmp.Ordered](lo, hi T) func(T) bool {
	return func(x T) bool {
		return cmp.Compare(x, lo) >= 0 && cmp.Compare(x, hi) <= 0
	}
}

// OneOf returns a validator accepting only the listed values.
func OneOf[T comparable](allowed ...T) func(T) bool {
	allowed = slices.Clone(allowed)
	return func(x T) bool {
		return slices.Contains(allowed, x)
	}
}

// Match returns a validator accepting strings matched by re.
func Match(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

// All returns a validator accepting values that pass every validator in fs.
// Nil entries are ignored.
func All[T any](fs ...func(T) bool) func(T) bool {
	fs = slices.DeleteFunc(slices.Clone(fs), func(f func(T) bool) bool { return f == nil })
	return func(x T) bool {
		for _, f := range fs {
			if !f(x) {
				return false
			}
		}
		return true
	}
}
