package usecase

import (
	"context"
	"fmt"

	"notification-enricher/internal/directory"
	"notification-enricher/internal/enrich"
	"notification-enricher/internal/filter"
	"notification-enricher/internal/model"
	"notification-enricher/internal/registry"
)

func (uc *usecase) Enrich(ctx context.Context, raw model.RawSubscriptionRecord) (model.NotificationRecord, error) {
	if raw.ID == "" {
		// Upstream handed over a record with no identity; fail loudly
		// instead of projecting garbage.
		return model.NotificationRecord{}, enrich.ErrInvalidRawRecord
	}

	d := uc.registry.Lookup(raw.EntityCode)

	rec := model.NotificationRecord{
		ID:       raw.ID,
		Caption:  raw.Caption,
		TopTitle: string(d.NotificationType),
		Subtitle: raw.EntityCode,

		CreatedTime:  raw.Created.At,
		CreatedBy:    raw.Created.By,
		ModifiedTime: raw.Modified.At,
		ModifiedBy:   raw.Modified.By,

		AccountID: raw.AccountID,

		Subscribers:     raw.Subscribers,
		Active:          raw.Active,
		LastMessageSent: raw.LastMessageSent,
		EmailSubject:    raw.EmailSubject,
		WebhookPayload:  raw.WebhookPayload,
		ExternalID:      raw.ExternalID,

		NotificationType: d.NotificationType,
		Group:            d.Group,
		Unimplemented:    d.Unimplemented,
		PseudoType:       d.PseudoType,

		Filters: raw.Filters,
	}

	q, terms, parseErr := filter.Parse(raw.Filters)
	rec.FiltersParsed = q
	if terms == nil {
		terms = []string{}
	}
	rec.Searchables = terms
	if parseErr != nil {
		uc.l.Warnf(ctx, "internal.enrich.usecase.Enrich.Parse: record %s: %v", raw.ID, parseErr)
		rec.Error = fmt.Sprintf("filter parse failed: %v", parseErr)
	}

	users, integrations, playbooks := splitSubscribers(raw.Subscribers)
	accounts := filter.AccountRefs(q)

	resolved := uc.resolver.ResolveAll(ctx, directory.ResolveAllInput{
		CreatorID:    raw.Created.By,
		Accounts:     accounts,
		Users:        users,
		Integrations: integrations,
		Playbooks:    playbooks,
	})

	rec.Accounts = accounts
	rec.AccountsName = resolved.Accounts
	rec.Users = users
	rec.UsersName = resolved.Users
	rec.Integrations = integrations
	rec.IntegrationsName = resolved.Integrations
	rec.Playbooks = playbooks
	rec.PlaybooksName = resolved.Playbooks
	rec.RecipientsTotal = len(users) + len(integrations) + len(playbooks)

	uc.fillAuditNames(ctx, &rec)

	// Pseudo and unimplemented types are aggregation-only: common fields
	// carry all the information the UI may act on.
	if !registry.IsImplemented(d) || registry.IsPseudoType(d) {
		return rec, nil
	}

	switch d.Group {
	case model.GroupAlert:
		switch d.NotificationType {
		case model.TypeIncident:
			uc.enrichIncident(&rec, raw, q)
		case model.TypeHealth:
			uc.enrichHealth(&rec, q)
		}
	case model.GroupScheduled:
		switch d.NotificationType {
		case model.TypeTableau, model.TypeSearch:
			uc.enrichReport(ctx, &rec, raw)
		}
	}

	return rec, nil
}

func (uc *usecase) EnrichBatch(ctx context.Context, raws []model.RawSubscriptionRecord) ([]model.NotificationRecord, error) {
	out := make([]model.NotificationRecord, 0, len(raws))

	for _, raw := range raws {
		select {
		case <-ctx.Done():
			// Records already in out are fully assembled; nothing partial
			// ever leaves this loop.
			return out, ctx.Err()
		default:
		}

		rec, err := uc.Enrich(ctx, raw)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func (uc *usecase) Types(_ context.Context) map[string]model.TypeDescriptor {
	return uc.registry.All()
}

// fillAuditNames resolves creator/modifier display names. Unlike recipient
// lists these fields stay absent when resolution fails.
func (uc *usecase) fillAuditNames(ctx context.Context, rec *model.NotificationRecord) {
	ids := make([]string, 0, 2)
	if rec.CreatedBy != "" {
		ids = append(ids, rec.CreatedBy)
	}
	if rec.ModifiedBy != "" && rec.ModifiedBy != rec.CreatedBy {
		ids = append(ids, rec.ModifiedBy)
	}
	if len(ids) == 0 {
		return
	}

	names, err := uc.resolver.Names(ctx, ids, directory.KindUsers)
	if err != nil {
		uc.l.Warnf(ctx, "internal.enrich.usecase.fillAuditNames: record %s: %v", rec.ID, err)
	}
	rec.CreatedByName = names[rec.CreatedBy]
	rec.ModifiedByName = names[rec.ModifiedBy]
}

// splitSubscribers buckets raw subscribers by class, keeping subscription
// order within each bucket. Unknown classes are ignored; they are not
// recipients this engine understands.
func splitSubscribers(subs []model.Subscriber) (users, integrations, playbooks []string) {
	users = []string{}
	integrations = []string{}
	playbooks = []string{}
	for _, s := range subs {
		switch s.Class {
		case model.SubscriberClassUser:
			users = append(users, s.ID)
		case model.SubscriberClassIntegration:
			integrations = append(integrations, s.ID)
		case model.SubscriberClassPlaybook:
			playbooks = append(playbooks, s.ID)
		}
	}
	return users, integrations, playbooks
}
