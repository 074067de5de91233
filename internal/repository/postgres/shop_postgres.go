package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pokedex/internal/database"
	"pokedex/internal/model"
	"pokedex/internal/repository"
)

const shopItemColumns = `id, name, category, price, description, image_key`

// equipColumns whitelists the profile column per category; it is the only source of
// identifiers interpolated into SQL here.
var equipColumns = map[model.ItemCategory]string{
	model.CategorySkin:      "equipped_skin",
	model.CategoryTheme:     "equipped_theme",
	model.CategoryBadge:     "equipped_badge",
	model.CategoryNameColor: "equipped_name_color",
}

func scanShopItem(row scanner) (*model.ShopItem, error) {
	var it model.ShopItem
	if err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Description, &it.ImageKey); err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

// ShopPostgres is a PostgreSQL implementation of repository.ShopRepository.
type ShopPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewShopPostgres creates a new ShopPostgres repository.
func NewShopPostgres(db *sql.DB) *ShopPostgres {
	return &ShopPostgres{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ repository.ShopRepository = (*ShopPostgres)(nil)

// ListItems returns shop items ordered by price then name.
func (r *ShopPostgres) ListItems(ctx context.Context, category model.ItemCategory) ([]model.ShopItem, error) {
	q := `SELECT ` + shopItemColumns + ` FROM shop_items`
	args := []any{}
	if category != "" {
		q += ` WHERE category = $1`
		args = append(args, string(category))
	}
	q += ` ORDER BY price, name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ShopItem, 0)
	for rows.Next() {
		it, err := scanShopItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindItem fetches a single shop item.
func (r *ShopPostgres) FindItem(ctx context.Context, id string) (*model.ShopItem, error) {
	return scanShopItem(r.db.QueryRowContext(ctx, `SELECT `+shopItemColumns+` FROM shop_items WHERE id = $1`, id))
}

// UpsertItems writes shop items. Items without an ID get one from the database.
func (r *ShopPostgres) UpsertItems(ctx context.Context, items []model.ShopItem) error {
	const q = `
		INSERT INTO shop_items (id, name, category, price, description, image_key)
		VALUES (COALESCE(NULLIF($1, '')::uuid, uuid_generate_v4()), $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			image_key = CASE WHEN EXCLUDED.image_key = '' THEN shop_items.image_key ELSE EXCLUDED.image_key END
	`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, it := range items {
			if _, err := tx.ExecContext(ctx, q,
				it.ID, it.Name, string(it.Category), it.Price, it.Description, it.ImageKey,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetImageKey records the object storage key of an item's artwork.
func (r *ShopPostgres) SetImageKey(ctx context.Context, id, key string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE shop_items SET image_key = $2 WHERE id = $1`, id, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Purchase checks ownership and balance against locked rows, then debits gold, stores the item
// and writes the ledger entry.
func (r *ShopPostgres) Purchase(ctx context.Context, userID, itemID string) (*repository.PurchaseOutcome, error) {
	var out *repository.PurchaseOutcome
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		item, err := scanShopItem(tx.QueryRowContext(ctx,
			`SELECT `+shopItemColumns+` FROM shop_items WHERE id = $1`, itemID))
		if err != nil {
			return err
		}

		var gold int64
		if err := tx.QueryRowContext(ctx,
			`SELECT gold FROM profiles WHERE id = $1 FOR UPDATE`, userID,
		).Scan(&gold); err != nil {
			return notFound(err)
		}

		var owned bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM inventory WHERE user_id = $1 AND item_id = $2)`, userID, itemID,
		).Scan(&owned); err != nil {
			return err
		}
		if owned {
			return repository.ErrAlreadyOwned
		}
		if gold < item.Price {
			return repository.ErrInsufficientGold
		}

		now := r.now()
		p, err := scanProfile(tx.QueryRowContext(ctx, `
			UPDATE profiles SET gold = gold - $2
			WHERE id = $1
			RETURNING `+profileColumns,
			userID, item.Price,
		))
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory (user_id, item_id, acquired_at) VALUES ($1, $2, $3)`,
			userID, itemID, now,
		); err != nil {
			if isUniqueViolation(err) {
				return repository.ErrAlreadyOwned
			}
			return err
		}
		if item.Price > 0 {
			if err := insertLedger(ctx, tx, model.LedgerEntry{
				ID:        newLedgerID(now),
				UserID:    userID,
				Delta:     -item.Price,
				Reason:    model.LedgerPurchase,
				Reference: item.ID,
				CreatedAt: now,
			}); err != nil {
				return err
			}
		}
		out = &repository.PurchaseOutcome{Item: *item, Profile: *p}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Inventory lists the user's items, newest first. Equipped is filled in by the caller.
func (r *ShopPostgres) Inventory(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	const q = `
		SELECT s.id, s.name, s.category, s.price, s.description, s.image_key, i.acquired_at
		FROM inventory i
		JOIN shop_items s ON s.id = i.item_id
		WHERE i.user_id = $1
		ORDER BY i.acquired_at DESC, s.name
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.InventoryItem, 0)
	for rows.Next() {
		var inv model.InventoryItem
		if err := rows.Scan(
			&inv.Item.ID,
			&inv.Item.Name,
			&inv.Item.Category,
			&inv.Item.Price,
			&inv.Item.Description,
			&inv.Item.ImageKey,
			&inv.AcquiredAt,
		); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Equip writes the item ID into the profile slot for its category.
func (r *ShopPostgres) Equip(ctx context.Context, userID, itemID string) (*model.Profile, error) {
	var out *model.Profile
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		item, err := scanShopItem(tx.QueryRowContext(ctx,
			`SELECT `+shopItemColumns+` FROM shop_items WHERE id = $1`, itemID))
		if err != nil {
			return err
		}
		var owned bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM inventory WHERE user_id = $1 AND item_id = $2)`, userID, itemID,
		).Scan(&owned); err != nil {
			return err
		}
		if !owned {
			return repository.ErrNotOwned
		}
		p, err := r.setSlot(ctx, tx, userID, item.Category, item.ID)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unequip clears the profile slot for category.
func (r *ShopPostgres) Unequip(ctx context.Context, userID string, category model.ItemCategory) (*model.Profile, error) {
	return r.setSlot(ctx, r.db, userID, category, "")
}

func (r *ShopPostgres) setSlot(ctx context.Context, q queryer, userID string, category model.ItemCategory, itemID string) (*model.Profile, error) {
	col, ok := equipColumns[category]
	if !ok {
		return nil, fmt.Errorf("unknown item category %q", category)
	}
	return scanProfile(q.QueryRowContext(ctx,
		`UPDATE profiles SET `+col+` = $2 WHERE id = $1 RETURNING `+profileColumns,
		userID, itemID,
	))
}
