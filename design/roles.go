package design

import "fmt"

// Roles maps the five governance responsibilities to their owners.
// An empty owner means the role is unassigned.
type Roles struct {
	KillSwitchOwner string `yaml:"kill_switch_owner"`
	DataPolicyOwner string `yaml:"data_policy_owner"`
	ServiceOwner    string `yaml:"service_owner"`
	SREOwner        string `yaml:"sre_owner"`
	DataSteward     string `yaml:"data_steward"`
}

// Role is one key/owner pair of a Roles record.
type Role struct {
	Key   string
	Owner string
}

// Entries returns the five roles in their fixed display order.
func (r Roles) Entries() []Role {
	return []Role{
		{"kill_switch_owner", r.KillSwitchOwner},
		{"data_policy_owner", r.DataPolicyOwner},
		{"service_owner", r.ServiceOwner},
		{"sre_owner", r.SREOwner},
		{"data_steward", r.DataSteward},
	}
}

// Assigned counts the roles that have an owner.
func (r Roles) Assigned() int {
	n := 0
	for _, e := range r.Entries() {
		if e.Owner != "" {
			n++
		}
	}
	return n
}

// Owner options for the two enumerated roles; the other three are free text.
var (
	KillSwitchOwnerOptions = []string{"", "SRE", "Product Owner", "Dev Lead"}
	DataPolicyOwnerOptions = []string{"", "Legal", "Data Steward", "CISO"}
)

// Validate checks the enumerated owners against their option lists.
func (r Roles) Validate() error {
	if err := validateOption("kill_switch_owner", r.KillSwitchOwner, KillSwitchOwnerOptions); err != nil {
		return err
	}
	return validateOption("data_policy_owner", r.DataPolicyOwner, DataPolicyOwnerOptions)
}

func validateOption(field, value string, options []string) error {
	for _, o := range options {
		if o == value {
			return nil
		}
	}
	return fmt.Errorf("roles.%s: unknown owner %q; valid: %q", field, value, options)
}
