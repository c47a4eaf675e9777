// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/gobuffalo/packr"

// Assets holds the resources bundled with the binary
var Assets = packr.NewBox("../assets")
