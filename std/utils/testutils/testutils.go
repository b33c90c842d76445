package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

// SetT binds the helpers below to the running test.
func SetT(t *testing.T) {
	testT = t
}

// NoErr unwraps a (value, error) pair, failing the test on error.
func NoErr[T any](v T, err error) T {
	testT.Helper()
	require.NoError(testT, err)
	return v
}

// Err discards the value of a (value, error) pair and requires the error.
func Err[T any](_ T, err error) error {
	testT.Helper()
	require.Error(testT, err)
	return err
}

// NotPanics runs fn and returns its result, failing the test if it panics.
func NotPanics[T any](fn func() T) (v T) {
	testT.Helper()
	require.NotPanics(testT, func() { v = fn() })
	return v
}
