package permission

import "github.com/instamakaan/instamakaan/internal/shared/authorization"

// DefaultPolicies grants role capabilities. Whether an agent holds a given
// inquiry, or an owner owns a listing, is decided by the use cases.
func DefaultPolicies() [][]string {
	admin := authorization.RoleAdmin.String()
	agent := authorization.RoleAgent.String()
	owner := authorization.RoleOwner.String()

	return [][]string{
		{admin, "*", "*"},

		{agent, authorization.ResourceInquiry, authorization.ActionRead},
		{agent, authorization.ResourceInquiry, authorization.ActionList},
		{agent, authorization.ResourceInquiry, authorization.ActionAdvance},
		{agent, authorization.ResourceInquiry, authorization.ActionNote},
		{agent, authorization.ResourceStats, authorization.ActionRead},
		{agent, authorization.ResourceAgent, authorization.ActionSummary},

		{owner, authorization.ResourceStats, authorization.ActionRead},
		{owner, authorization.ResourceOwner, authorization.ActionSummary},
	}
}
