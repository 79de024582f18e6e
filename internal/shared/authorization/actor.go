package authorization

// Actor identifies who performs an operation. It is passed explicitly into
// every use case; nothing reads the caller from ambient state.
// For RoleAgent the ID is the agent id; for RoleOwner it is the owner id.
type Actor struct {
	ID   string
	Role UserRole
	Name string
}

// SystemAuthorName is the author recorded on entries the engine writes itself.
const SystemAuthorName = "System"

// AdminAuthorName is the author recorded for admin-authored entries.
const AdminAuthorName = "Admin"

func NewActor(id string, role UserRole, name string) Actor {
	return Actor{ID: id, Role: role, Name: name}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsAgent() bool {
	return a.Role == RoleAgent
}

func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}

// IsAuthenticated reports whether the actor came from a verified credential.
func (a Actor) IsAuthenticated() bool {
	return a.ID != "" && a.Role.IsValid()
}

// AuthorName is the display name stored on log entries the actor writes.
func (a Actor) AuthorName() string {
	if a.IsAdmin() {
		return AdminAuthorName
	}
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// Resources and actions understood by the Authorizer.
const (
	ResourceInquiry   = "inquiry"
	ResourceAgent     = "agent"
	ResourceStats     = "stats"
	ResourceDashboard = "dashboard"
	ResourceOwner     = "owner"

	ActionRead      = "read"
	ActionList      = "list"
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionAssign    = "assign"
	ActionUnassign  = "unassign"
	ActionAdvance   = "advance"
	ActionSetStatus = "set_status"
	ActionNote      = "note"
	ActionSummary   = "summary"
)

// Authorizer answers role capability questions. Record ownership (for example
// "is this agent the current assignee") is checked by the caller on top of it.
type Authorizer interface {
	Authorize(role UserRole, resource, action string) (bool, error)
}
