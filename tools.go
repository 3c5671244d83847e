//go:build tools

package entrygen

import (
	_ "github.com/vektra/mockery/v2"
)
