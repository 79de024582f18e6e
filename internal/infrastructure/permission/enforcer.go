package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

var _ authorization.Authorizer = (*Enforcer)(nil)

// roleModel is plain RBAC on role names; "*" in a policy matches any
// resource or action.
const roleModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer keeps policies in the casbin_rule table and seeds the default
// role policies on first start.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(roleModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(DefaultPolicies(), true); err != nil {
		return nil, err
	}
	return e, nil
}

// NewMemoryEnforcer holds the default policies in memory only.
func NewMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(roleModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(DefaultPolicies(), false); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) seed(policies [][]string, persist bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, policy := range policies {
		ok, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2])
		if err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", policy[0], policy[1], policy[2], err)
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		e.logger.Infow("role policies seeded", "added", added, "persisted", persist)
	}
	return nil
}

// Authorize implements authorization.Authorizer.
func (e *Enforcer) Authorize(role authorization.UserRole, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

func (e *Enforcer) AddPolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
