package rls

import "github.com/arbor-inc/arbor/internal/shared/constants"

// ProtectedTables lists every table covered by row security policies, in
// dependency order. Diagnostic operations validate table arguments against
// this set before interpolating them into SQL.
var ProtectedTables = []string{
	constants.TableUsers,
	constants.TableTenants,
	constants.TableUserTenants,
	constants.TablePlans,
	constants.TableLimitPolicies,
	constants.TablePlansLimitPolicies,
	constants.TableSubscriptions,
	constants.TableUsages,
}

func isProtectedTable(name string) bool {
	for _, t := range ProtectedTables {
		if t == name {
			return true
		}
	}
	return false
}
