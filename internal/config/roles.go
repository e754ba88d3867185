package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RoleMap assigns remediation tasks to staff roles. Deployments with
// different staffing models override the defaults via a YAML file whose
// keys are routing keywords or full risk type tags:
//
//	roles:
//	  signature: trustee
//	  calculation: financial_analyst
//	  PRIVACY_SIN_EXPOSED: compliance_officer
type RoleMap struct {
	Roles map[string]string `yaml:"roles"`
}

func LoadRoleMap(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role map: %w", err)
	}

	var rm RoleMap
	if err := yaml.Unmarshal(raw, &rm); err != nil {
		return nil, fmt.Errorf("parse role map: %w", err)
	}
	return rm.Roles, nil
}
