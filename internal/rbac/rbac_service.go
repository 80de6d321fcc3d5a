package rbac

import (
	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.seedPolicies(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}

// seedPolicies installs the static role table. Policies live in memory;
// the product has exactly three roles and no runtime policy editing.
func (s *service) seedPolicies() error {
	policies := [][]string{
		{RoleAdmin, "users", "create"},
		{RoleAdmin, "users", "read"},
		{RoleAdmin, "payroll", "read"},
		{RoleAdmin, "payroll", "run"},
		{RoleAdmin, "tasks", "assign"},

		{RoleManager, "leaves", "approve"},
		{RoleManager, "weekend-work", "approve"},
		{RoleManager, "shifts", "approve"},
		{RoleManager, "timesheets", "approve"},
		{RoleManager, "tasks", "assign"},

		{RoleEmployee, "attendance", "write"},
		{RoleEmployee, "leaves", "request"},
		{RoleEmployee, "weekend-work", "request"},
		{RoleEmployee, "shifts", "request"},
		{RoleEmployee, "timesheets", "write"},
		{RoleEmployee, "tasks", "update"},
	}

	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	// Role inheritance: admin can do everything a manager can, a manager
	// everything an employee can.
	if _, err := s.enforcer.AddGroupingPolicy(RoleAdmin, RoleManager); err != nil {
		return err
	}
	if _, err := s.enforcer.AddGroupingPolicy(RoleManager, RoleEmployee); err != nil {
		return err
	}

	return nil
}
