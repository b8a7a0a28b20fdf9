// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var ErrUnknownLayer = errors.New("unknown layer")
