// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/models"
)

// sqlBackend stores objects in the encrypted_objects table, keyed by their
// full object path so that several vault directories can share a database.
type sqlBackend struct {
	db      *DB
	queries sqlQueries
	dir     string
	now     func() time.Time
	logger  *logger.Logger
}

// NewSQLBackend constructs a [Backend] over an open and migrated [DB].
func NewSQLBackend(db *DB, dir string, log *logger.Logger) Backend {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql backend")
	return &sqlBackend{
		db:      db,
		queries: newSQLQueries(db.placeholder),
		dir:     dir,
		now:     time.Now,
		logger:  log,
	}
}

func (s *sqlBackend) Put(ctx context.Context, name string, data []byte) (string, error) {
	query, args, err := s.queries.upsertObject(ObjectPath(s.dir, name), string(data), s.now().Unix())
	if err != nil {
		return "", err
	}

	var revision int64
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&revision); err != nil {
		return "", s.wrap("put "+name, err)
	}

	return strconv.FormatInt(revision, 10), nil
}

func (s *sqlBackend) Get(ctx context.Context, name string) (models.Object, error) {
	query, args, err := s.queries.selectObject(ObjectPath(s.dir, name))
	if err != nil {
		return models.Object{}, err
	}

	var (
		content  string
		size     int64
		revision int64
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&content, &size, &revision)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Object{}, fmt.Errorf("%s: %w", ObjectPath(s.dir, name), ErrObjectNotFound)
	}
	if err != nil {
		return models.Object{}, s.wrap("get "+name, err)
	}

	return models.Object{
		ObjectInfo: models.ObjectInfo{
			Name:     name,
			Size:     size,
			Revision: strconv.FormatInt(revision, 10),
		},
		Data: []byte(content),
	}, nil
}

func (s *sqlBackend) Delete(ctx context.Context, name string) (bool, error) {
	query, args, err := s.queries.deleteObject(ObjectPath(s.dir, name))
	if err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, s.wrap("delete "+name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, s.wrap("delete "+name, err)
	}

	return affected > 0, nil
}

func (s *sqlBackend) List(ctx context.Context) ([]models.ObjectInfo, error) {
	prefix := cleanDir(s.dir) + "/"

	query, args, err := s.queries.listObjects(prefix)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap("list", err)
	}
	defer rows.Close()

	infos := make([]models.ObjectInfo, 0)
	for rows.Next() {
		var (
			key      string
			size     int64
			revision int64
		)
		if err = rows.Scan(&key, &size, &revision); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		file, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		name, ok := ItemName(file)
		if !ok {
			continue
		}

		infos = append(infos, models.ObjectInfo{
			Name:     name,
			Size:     size,
			Revision: strconv.FormatInt(revision, 10),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, s.wrap("list", err)
	}

	return infos, nil
}

func (s *sqlBackend) AcquireLease(ctx context.Context, owner string, ttl time.Duration) error {
	now := s.now()

	query, args, err := s.queries.acquireLease(LeasePath(s.dir), owner, now.Add(ttl).Unix(), now.Unix())
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return s.wrap("acquire lease", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return s.wrap("acquire lease", err)
	}
	if affected == 0 {
		return ErrLeaseHeld
	}

	return nil
}

func (s *sqlBackend) ReleaseLease(ctx context.Context, owner string) error {
	query, args, err := s.queries.releaseLease(LeasePath(s.dir), owner)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return s.wrap("release lease", err)
	}

	return nil
}

func (s *sqlBackend) Close() error {
	return s.db.Close()
}

// wrap adds the operation name and maps transient driver failures to
// [ErrStoreUnavailable].
func (s *sqlBackend) wrap(op string, err error) error {
	if s.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("sql %s: %w: %w", op, ErrStoreUnavailable, err)
	}

	return fmt.Errorf("sql %s: %w: %w", op, ErrExecutingQuery, err)
}
