package usecase

import (
	"context"
	"sync"

	"notification-enricher/internal/directory"
	"notification-enricher/internal/model"
)

func (uc *usecase) Resolve(ctx context.Context, ids []string, creatorID string, kind directory.Kind) []model.ResolvedName {
	// Placeholders first: the output length is fixed by the input length no
	// matter what the directory does.
	out := make([]model.ResolvedName, len(ids))
	for i, id := range ids {
		out[i] = model.ResolvedName{
			Name:      directory.PlaceholderName,
			IsCreator: creatorID != "" && id == creatorID,
		}
	}
	if len(ids) == 0 {
		return out
	}

	names, err := uc.Names(ctx, ids, kind)
	if err != nil {
		uc.l.Warnf(ctx, "internal.directory.usecase.Resolve.%s: %v", kind, err)
	}
	// A partial map is still applied: failures affect labels, never counts.
	for i, id := range ids {
		if name, ok := names[id]; ok && name != "" {
			out[i].Name = name
		}
	}

	return out
}

func (uc *usecase) ResolveAll(ctx context.Context, ip directory.ResolveAllInput) directory.ResolveAllOutput {
	var op directory.ResolveAllOutput

	// The four kinds have no ordering dependency on each other; each
	// goroutine writes only its own field.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		op.Accounts = uc.Resolve(ctx, ip.Accounts, ip.CreatorID, directory.KindAccounts)
	}()
	go func() {
		defer wg.Done()
		op.Users = uc.Resolve(ctx, ip.Users, ip.CreatorID, directory.KindUsers)
	}()
	go func() {
		defer wg.Done()
		op.Integrations = uc.Resolve(ctx, ip.Integrations, ip.CreatorID, directory.KindIntegrations)
	}()
	go func() {
		defer wg.Done()
		op.Playbooks = uc.Resolve(ctx, ip.Playbooks, ip.CreatorID, directory.KindPlaybooks)
	}()
	wg.Wait()

	return op
}

func (uc *usecase) Names(ctx context.Context, ids []string, kind directory.Kind) (map[string]string, error) {
	if !kind.IsValid() {
		return map[string]string{}, directory.ErrUnknownKind
	}
	repo := uc.repos[kind]
	if repo == nil {
		return map[string]string{}, directory.ErrNoDirectory
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	names, err := repo.LookupNames(lookupCtx, ids)
	if names == nil {
		names = map[string]string{}
	}
	return names, err
}
