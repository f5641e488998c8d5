// Package utils holds field validators shared by the ent schemas.
package utils

import "fmt"

// EnumValidator returns an ent string-field validator that accepts exactly
// the given values. The column stays a plain string; the enum is enforced
// at write time so migrations never fight a Postgres enum type.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("%q is not one of %v", s, allowed)
	}
}
