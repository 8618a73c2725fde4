// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	objectsTable = "encrypted_objects"
	leasesTable  = "rotation_leases"

	upsertObjectSuffix = `ON CONFLICT (name) DO UPDATE SET
		content = excluded.content,
		size = excluded.size,
		revision = encrypted_objects.revision + 1,
		updated_at = excluded.updated_at
	RETURNING revision`

	acquireLeaseSuffix = `ON CONFLICT (name) DO UPDATE SET
		owner = excluded.owner,
		expires_at = excluded.expires_at
	WHERE rotation_leases.owner = excluded.owner OR rotation_leases.expires_at <= ?`
)

type sqlQueries struct {
	builder sq.StatementBuilderType
}

func newSQLQueries(placeholder sq.PlaceholderFormat) sqlQueries {
	return sqlQueries{builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q sqlQueries) upsertObject(key, content string, updatedAt int64) (string, []any, error) {
	query, args, err := q.builder.
		Insert(objectsTable).
		Columns("name", "content", "size", "revision", "updated_at").
		Values(key, content, len(content), 1, updatedAt).
		Suffix(upsertObjectSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (q sqlQueries) selectObject(key string) (string, []any, error) {
	query, args, err := q.builder.
		Select("content", "size", "revision").
		From(objectsTable).
		Where(sq.Eq{"name": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (q sqlQueries) deleteObject(key string) (string, []any, error) {
	query, args, err := q.builder.
		Delete(objectsTable).
		Where(sq.Eq{"name": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// listObjects selects every key under prefix. LIKE treats "_" as a
// wildcard, so callers re-check the prefix on each row.
func (q sqlQueries) listObjects(prefix string) (string, []any, error) {
	query, args, err := q.builder.
		Select("name", "size", "revision").
		From(objectsTable).
		Where(sq.Like{"name": prefix + "%"}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (q sqlQueries) acquireLease(key, owner string, expiresAt, now int64) (string, []any, error) {
	query, args, err := q.builder.
		Insert(leasesTable).
		Columns("name", "owner", "expires_at").
		Values(key, owner, expiresAt).
		Suffix(acquireLeaseSuffix, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (q sqlQueries) releaseLease(key, owner string) (string, []any, error) {
	query, args, err := q.builder.
		Delete(leasesTable).
		Where(sq.Eq{"name": key, "owner": owner}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
