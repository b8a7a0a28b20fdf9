// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var ErrInvalidConfig = errors.New("invalid config")
