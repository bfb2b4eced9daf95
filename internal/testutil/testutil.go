// Package testutil provides shared test utilities and fixtures.
package testutil

import (
	"strings"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// Frame builds the console line the central prints for the given record
// payloads, e.g. Frame("0,25.12,1000270,52.04,8").
func Frame(records ...string) []byte {
	return []byte("##" + strings.Join(records, ",") + "^^\r\n")
}
