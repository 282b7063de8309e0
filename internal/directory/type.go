package directory

import "notification-enricher/internal/model"

// Kind identifies one of the directories the resolver can consult.
type Kind string

const (
	KindAccounts     Kind = "accounts"
	KindUsers        Kind = "users"
	KindIntegrations Kind = "integrations"
	KindPlaybooks    Kind = "playbooks"
)

// IsValid checks if the kind is one of the known directories.
func (k Kind) IsValid() bool {
	switch k {
	case KindAccounts, KindUsers, KindIntegrations, KindPlaybooks:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ResolveAllInput carries the four raw id sets extracted from one record.
type ResolveAllInput struct {
	CreatorID    string
	Accounts     []string
	Users        []string
	Integrations []string
	Playbooks    []string
}

// ResolveAllOutput carries the four resolved name lists. Each list's order
// matches the corresponding input id order.
type ResolveAllOutput struct {
	Accounts     []model.ResolvedName
	Users        []model.ResolvedName
	Integrations []model.ResolvedName
	Playbooks    []model.ResolvedName
}
