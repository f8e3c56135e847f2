// Package assert holds the go-cmp backed test assertions shared by every package.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpOpts sync.Map

var errorCompareOpts = cmp.Options{cmp.Comparer(func(e1, e2 error) bool {
	if e1 == nil || e2 == nil {
		return e1 == nil && e2 == nil
	}
	return e1.Error() == e2.Error()
})}

// RegisterOpts registers go-cmp options used whenever a value of type t is compared
func RegisterOpts(t reflect.Type, opts ...cmp.Option) {
	cmpOpts.Store(t, cmp.Options(opts))
}

// Equal fails the test if expected and actual are not equal
func Equal(t testing.TB, expected, actual interface{}) {
	t.Helper()
	switch expected.(type) {
	case string:
		Equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%q\n\t%q", actual, expected)
	default:
		Equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%T{%+v}\n\t%T{%+v}", actual, actual, expected, expected)
	}
}

// Equalf fails the test with the formatted message if expected and actual are not equal
func Equalf(t testing.TB, expected, actual interface{}, format string, args ...interface{}) {
	t.Helper()
	if !equal(expected, actual) {
		t.Fatalf("\n"+format, args...)
	}
}

// NotEqualf fails the test with the formatted message if expected and actual are equal
func NotEqualf(t testing.TB, expected, actual interface{}, format string, args ...interface{}) {
	t.Helper()
	if equal(expected, actual) {
		t.Fatalf("\n"+format, args...)
	}
}

// Match fails the test with the go-cmp diff if expected and actual differ
func Match(t testing.TB, expected, actual interface{}) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, getCmpOpts(expected)...); diff != "" {
		t.Fatalf("\nfailed to assert no diff:\n%s", diff)
	}
}

// True fails the test with the formatted message unless o is the boolean true
func True(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || !b {
		t.Fatalf("\n"+format, args...)
	}
}

// False fails the test with the formatted message unless o is the boolean false
func False(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || b {
		t.Fatalf("\n"+format, args...)
	}
}

// Nil fails the test if o is not nil
func Nil(t testing.TB, o interface{}) {
	t.Helper()
	if !isNil(o) {
		t.Fatalf("\nfailed to assert nil: %T{%+v}", o, o)
	}
}

// NotNil fails the test if o is nil
func NotNil(t testing.TB, o interface{}) {
	t.Helper()
	if isNil(o) {
		t.Fatalf("\nfailed to assert not nil: %T", o)
	}
}

// Contains fails the test if s does not contain substr
func Contains(t testing.TB, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("\nfailed to assert contains ( actual, expected substring )\n\t%q\n\t%q", s, substr)
	}
}

// ErrorIs fails the test unless target is found in err's chain
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("\nfailed to assert error chain ( actual, expected )\n\t%v\n\t%v", err, target)
	}
}

// equal compares errors of different types by their messages,
// go-cmp only applies the error comparer to values of the same type
func equal(expected, actual interface{}) bool {
	if e1, ok := expected.(error); ok {
		if e2, ok := actual.(error); ok {
			return e1.Error() == e2.Error()
		}
	}
	return cmp.Equal(expected, actual, getCmpOpts(expected)...)
}

func getCmpOpts(o interface{}) cmp.Options {
	if opts, ok := cmpOpts.Load(reflect.TypeOf(o)); ok {
		return opts.(cmp.Options)
	}
	if _, ok := o.(error); ok {
		return errorCompareOpts
	}
	return nil
}

func isNil(o interface{}) bool {
	if o == nil {
		return true
	}

	val := reflect.ValueOf(o)
	switch val.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return val.IsNil()
	}
	return false
}
