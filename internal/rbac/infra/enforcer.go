package infra

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyText string

// NewEnforcer builds the console enforcer from the embedded model and
// default role policy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies, groupings, err := ParsePolicy(policyText)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}
	return e, nil
}

// ParsePolicy splits casbin CSV lines into p and g rules.
func ParsePolicy(text string) (policies, groupings [][]string, err error) {
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		switch fields[0] {
		case "p":
			if len(fields) != 4 {
				return nil, nil, fmt.Errorf("policy line %d: want 3 fields, got %d", n+1, len(fields)-1)
			}
			policies = append(policies, fields[1:])
		case "g":
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("policy line %d: want 2 fields, got %d", n+1, len(fields)-1)
			}
			groupings = append(groupings, fields[1:])
		default:
			return nil, nil, fmt.Errorf("policy line %d: unknown type %q", n+1, fields[0])
		}
	}
	return policies, groupings, nil
}
