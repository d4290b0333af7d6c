package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/client/store"
)

// Directory is the username-keyed account table behind sign-in.
//
// Contract:
//   - ListAll: every account in insertion order; empty when nothing is stored.
//   - Upsert: replace the account with the same username, or add it; the
//     written account always ends up last.
//   - FindByUsername: exact, case-sensitive lookup.
type Directory interface {
	ListAll(ctx context.Context) ([]models.Account, error)
	Upsert(ctx context.Context, a models.Account) error
	FindByUsername(ctx context.Context, username string) (models.Account, bool, error)
}

type directory struct {
	store RecordStore
}

func NewDirectory(s RecordStore) Directory {
	return &directory{store: s}
}

func (d *directory) ListAll(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	found, err := d.store.Read(ctx, store.KeyUsers, &accounts)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}
	if !found || accounts == nil {
		return []models.Account{}, nil
	}
	return accounts, nil
}

func (d *directory) Upsert(ctx context.Context, a models.Account) error {
	accounts, err := d.ListAll(ctx)
	if err != nil {
		return err
	}

	kept := accounts[:0]
	for _, existing := range accounts {
		if existing.Username != a.Username {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, a)

	if err := d.store.Write(ctx, store.KeyUsers, kept); err != nil {
		return fmt.Errorf("save directory: %w", err)
	}
	return nil
}

func (d *directory) FindByUsername(ctx context.Context, username string) (models.Account, bool, error) {
	accounts, err := d.ListAll(ctx)
	if err != nil {
		return models.Account{}, false, err
	}
	for _, a := range accounts {
		if a.Username == username {
			return a, true, nil
		}
	}
	return models.Account{}, false, nil
}
