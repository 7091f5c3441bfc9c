// Package constants provides application-wide constant values for dodgem.
//
// This package centralizes the fixed defaults that define dodgem's behavior:
// the branch a bump may run on, the project file that carries the version
// string, and the bump kind used when none is requested.
//
// # Usage
//
// The constants in this package can be imported and used directly:
//
//	import "github.com/dbr/dodgem/internal/constants"
//
//	func defaultTarget() string {
//	    return constants.DefaultVersionFile
//	}
//
// Keeping these in one place means the CLI surface, the configuration layer,
// and the tests all agree on the same defaults.
package constants
