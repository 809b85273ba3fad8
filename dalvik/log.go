// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dalvik

import (
	"io/ioutil"
	"log"
	"os"
)

// PrintDebugInfo records whether package dalvik writes debug-tag
// traces to stderr. It is read once, at package init, to pick the
// logger's output; after that only SetDebugMode changes where the
// logger writes.
var PrintDebugInfo = false

var logger *log.Logger

func init() {
	w := ioutil.Discard

	if PrintDebugInfo {
		w = os.Stderr
	}

	logger = log.New(w, "dex2c: ", log.Lshortfile)
}

// SetDebugMode flips the package-wide debug logging toggle and
// re-targets the logger accordingly. It is intended to be called once,
// before any translation work begins.
func SetDebugMode(on bool) {
	PrintDebugInfo = on
	w := ioutil.Discard
	if on {
		w = os.Stderr
	}
	logger.SetOutput(w)
}
