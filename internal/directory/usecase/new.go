package usecase

import (
	"time"

	"notification-enricher/internal/directory"
	"notification-enricher/internal/directory/repository"
	pkgLog "notification-enricher/pkg/log"
)

const defaultLookupTimeout = 3 * time.Second

type usecase struct {
	l       pkgLog.Logger
	repos   map[directory.Kind]repository.Repository
	timeout time.Duration
}

// Repositories binds one repository per directory kind.
type Repositories struct {
	Accounts     repository.Repository
	Users        repository.Repository
	Integrations repository.Repository
	Playbooks    repository.Repository
}

// New creates the identifier resolver. Timeout bounds each id-set lookup; a
// non-positive value falls back to the default.
func New(l pkgLog.Logger, repos Repositories, timeout time.Duration) directory.Resolver {
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &usecase{
		l: l,
		repos: map[directory.Kind]repository.Repository{
			directory.KindAccounts:     repos.Accounts,
			directory.KindUsers:        repos.Users,
			directory.KindIntegrations: repos.Integrations,
			directory.KindPlaybooks:    repos.Playbooks,
		},
		timeout: timeout,
	}
}
