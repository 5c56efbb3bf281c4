// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package gblog is a thin wrapper over the standard log package for
// unrecoverable construction errors. No package in this module calls
// it. It never pulls in a logging framework; gbcore has no host and
// does not need one.
package gblog

import "log"

// Logger is the seam a host can substitute to redirect core log
// output; the default implementation writes through the standard
// library.
type Logger interface {
	Fatalf(format string, args ...interface{})
}

type stdLogger struct{}

func (stdLogger) Fatalf(format string, args ...interface{}) { log.Fatalf(format, args...) }

var logger Logger = stdLogger{}

// SetLogger replaces the package-level logger. Passing nil restores
// the standard-library default.
func SetLogger(impl Logger) {
	if impl == nil {
		logger = stdLogger{}
		return
	}
	logger = impl
}

// Fatalf logs a fatal condition and terminates, matching the
// teacher's log.L(args...) call sites inside the core for conditions
// that indicate a construction bug rather than a runtime error.
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
