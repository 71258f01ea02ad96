// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration is returned for non-positive sizes, a non-positive
	// weight variance or an input of the wrong length
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrIndexOutOfRange is returned when a statistic coordinate does not fit the width
	ErrIndexOutOfRange = errors.New("index out of range")
)
