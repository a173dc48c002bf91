package models

// Role defines the two user roles within a tenant
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// SubscriptionPlan defines the two subscription tiers for a tenant
type SubscriptionPlan string

const (
	PlanFree SubscriptionPlan = "free"
	PlanPro  SubscriptionPlan = "pro"
)

// FreePlanNoteLimit is the maximum number of notes a free tenant may hold.
const FreePlanNoteLimit = 3

// IsValid checks if the SubscriptionPlan is valid
func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro:
		return true
	}
	return false
}

// NoteLimit returns the note cap for the plan, or nil when unlimited.
func (p SubscriptionPlan) NoteLimit() *int {
	if p == PlanFree {
		limit := FreePlanNoteLimit
		return &limit
	}
	return nil
}
