package resolver

import "github.com/mna/oberesolve/lang/scope"

// disambiguate is the generic "reduce" of spec Design Notes: given the
// alternatives at one ambiguous site and a function that tries to resolve
// one alternative, it returns the resolved value of the unique alternative
// that succeeded, how many alternatives succeeded, and the errors produced
// by the alternatives that failed. Callers discard them on a unique
// success and wrap them into the site's Invalid* error when nothing
// succeeded; an Ambiguous* error carries no causes. ResolveDesignator and
// ResolveExpr return the error unwrapped when the site has a single
// alternative.
func disambiguate[T, R any](alts []T, attempt func(T) (R, *scope.Error)) (result R, successCount int, errs scope.Errors) {
	for _, alt := range alts {
		v, err := attempt(alt)
		if err == nil {
			result = v
			successCount++
			continue
		}
		errs.Add(err)
	}
	return result, successCount, errs
}
