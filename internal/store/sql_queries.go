// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-asset-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, name, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    WHERE email = $1;`

	createAsset = `INSERT INTO assets (user_id, name, number)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, name, number, created_at, updated_at;`

	getAllUserAssets = `SELECT id, user_id, name, number, created_at, updated_at
    FROM assets
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	getAsset = `SELECT id, user_id, name, number, created_at, updated_at
    FROM assets
    WHERE id = $1;`

	deleteAsset = `DELETE FROM assets
    WHERE id = $1;`
)

// buildUpdateAssetQuery builds a partial UPDATE for a single asset.
// Only the non-nil fields of update are added as SET clauses; updated_at is
// always bumped. The query returns the updated row so the caller can hand
// the canonical database representation back to the client.
func buildUpdateAssetQuery(update models.AssetUpdate) (string, []any, error) {
	builder := sq.Update("assets").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, user_id, name, number, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}

	if update.Number != nil {
		builder = builder.Set("number", *update.Number)
	}

	return builder.ToSql()
}
