// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/internal/validators"
	"github.com/MKhiriev/go-env-vault/models"
	"golang.org/x/sync/errgroup"
)

// rotationCommitTimeout bounds the commit phase, which ignores request
// cancellation.
const rotationCommitTimeout = 2 * time.Minute

// stagedItem is one entry of the rotation batch.
type stagedItem struct {
	name string
	data []byte
	// skip marks an item already under the new passphrase.
	skip bool
}

// rotationCoordinator re-encrypts the whole store in three phases: verify
// the old passphrase, stage every item in memory, then commit the batch.
// Nothing is written unless staging succeeded for every item.
type rotationCoordinator struct {
	backend  store.Backend
	cipher   crypto.Cipher
	verifier PassphraseVerifier
	gate     *rotationGate
	ids      *utils.UUIDGenerator

	leaseTTL       time.Duration
	stagingWorkers int

	logger *logger.Logger
}

func newRotationCoordinator(backend store.Backend, cipher crypto.Cipher, verifier PassphraseVerifier, gate *rotationGate, cfg config.Vault, log *logger.Logger) *rotationCoordinator {
	workers := cfg.StagingWorkers
	if workers < 1 {
		workers = 1
	}

	return &rotationCoordinator{
		backend:        backend,
		cipher:         cipher,
		verifier:       verifier,
		gate:           gate,
		ids:            utils.NewUUIDGenerator(),
		leaseTTL:       cfg.RotationLeaseTTL,
		stagingWorkers: workers,
		logger:         log,
	}
}

// NewRotator constructs a [Rotator] over backend.
func NewRotator(backend store.Backend, cipher crypto.Cipher, cfg config.Vault, log *logger.Logger) Rotator {
	gate := newRotationGate()
	verifier := newPassphraseVerifier(backend, cipher, gate, log)
	return newRotationCoordinator(backend, cipher, verifier, gate, cfg, log)
}

// Rotate re-encrypts every item from oldPassphrase to newPassphrase.
//
// A staging failure returns a *RotationStagingError and leaves the store
// untouched. A commit failure returns a *RotationCommitError whose report
// names the rotated, failed and pending items. The sentinel is written last,
// so after a commit failure oldPassphrase still verifies and calling Rotate
// again with the same arguments completes the rotation: items that already
// decrypt with newPassphrase are skipped.
func (r *rotationCoordinator) Rotate(ctx context.Context, oldPassphrase, newPassphrase string) (models.RotationReport, error) {
	log := logger.FromContext(ctx)

	if oldPassphrase == "" || newPassphrase == "" {
		return models.RotationReport{}, ErrEmptyPassphrase
	}

	done, ok := r.gate.tryBeginRotation()
	if !ok {
		return models.RotationReport{}, ErrRotationInProgress
	}
	defer done()

	// A wrong old passphrase is rejected before the lease is taken, so it
	// leaves nothing behind in the store.
	if err := r.verifyOld(ctx, oldPassphrase); err != nil {
		return models.RotationReport{}, err
	}

	owner := r.ids.Generate()
	if err := r.backend.AcquireLease(ctx, owner, r.leaseTTL); err != nil {
		if errors.Is(err, store.ErrLeaseHeld) {
			return models.RotationReport{}, fmt.Errorf("%w: %w", ErrRotationInProgress, err)
		}
		return models.RotationReport{}, fmt.Errorf("error acquiring rotation lease: %w", err)
	}
	defer func() {
		if err := r.backend.ReleaseLease(context.WithoutCancel(ctx), owner); err != nil {
			log.Err(err).Str("owner", owner).Msg("rotation lease was not released")
		}
	}()

	release := r.gate.excludeWrites()
	defer release()

	if err := r.verifyOld(ctx, oldPassphrase); err != nil {
		return models.RotationReport{}, err
	}

	batch, err := r.stage(ctx, oldPassphrase, newPassphrase)
	if err != nil {
		log.Err(err).Msg("rotation aborted during staging")
		return models.RotationReport{}, err
	}

	// Once staging succeeded the commit outlives the request, bounded by
	// its own deadline.
	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rotationCommitTimeout)
	defer cancel()

	report, err := r.commit(commitCtx, batch)
	if err != nil {
		log.Err(err).
			Strs("rotated", report.Rotated).
			Str("failed", report.Failed).
			Strs("pending", report.Pending).
			Msg("rotation commit stopped")
		return report, err
	}

	log.Info().Int("rotated", len(report.Rotated)).Int("skipped", len(report.Skipped)).Msg("passphrase rotated")
	return report, nil
}

func (r *rotationCoordinator) verifyOld(ctx context.Context, oldPassphrase string) error {
	ok, err := r.verifier.VerifyPassphrase(ctx, oldPassphrase)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOldPassphrase
	}
	return nil
}

// stage lists the store and re-encrypts every item in memory. The
// returned batch keeps store order with the sentinel moved to the end.
func (r *rotationCoordinator) stage(ctx context.Context, oldPassphrase, newPassphrase string) ([]stagedItem, error) {
	items, err := r.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing items: %w", ErrRotationStaging, err)
	}

	names := make([]string, 0, len(items))
	hasSentinel := false
	for _, item := range items {
		if item.Name == validators.SentinelName {
			hasSentinel = true
			continue
		}
		names = append(names, item.Name)
	}
	if hasSentinel {
		names = append(names, validators.SentinelName)
	}

	batch := make([]stagedItem, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.stagingWorkers)
	for i, name := range names {
		g.Go(func() error {
			staged, err := r.restage(gctx, name, oldPassphrase, newPassphrase)
			if err != nil {
				return &RotationStagingError{Name: name, Err: err}
			}
			batch[i] = staged
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return batch, nil
}

func (r *rotationCoordinator) restage(ctx context.Context, name, oldPassphrase, newPassphrase string) (stagedItem, error) {
	if err := ctx.Err(); err != nil {
		return stagedItem{}, err
	}

	obj, err := r.backend.Get(ctx, name)
	if err != nil {
		return stagedItem{}, err
	}

	blob, err := crypto.DecodeBlob(string(obj.Data))
	if err != nil {
		return stagedItem{}, err
	}

	plaintext, err := r.cipher.Decrypt(blob, oldPassphrase)
	if errors.Is(err, crypto.ErrInvalidPassphrase) {
		if _, newErr := r.cipher.Decrypt(blob, newPassphrase); newErr == nil {
			return stagedItem{name: name, skip: true}, nil
		}
		return stagedItem{}, fmt.Errorf("decrypts with neither passphrase: %w", err)
	}
	if err != nil {
		return stagedItem{}, err
	}

	rotated, err := r.cipher.Encrypt(plaintext, newPassphrase)
	if err != nil {
		return stagedItem{}, err
	}

	return stagedItem{name: name, data: []byte(crypto.EncodeBlob(rotated))}, nil
}

// commit writes the batch in order and stops at the first failure.
func (r *rotationCoordinator) commit(ctx context.Context, batch []stagedItem) (models.RotationReport, error) {
	report := models.RotationReport{Rotated: []string{}}

	for i, item := range batch {
		if item.skip {
			report.Skipped = append(report.Skipped, item.name)
			continue
		}

		err := ctx.Err()
		if err == nil {
			_, err = r.backend.Put(ctx, item.name, item.data)
		}
		if err != nil {
			report.Failed = item.name
			for _, rest := range batch[i+1:] {
				if rest.skip {
					report.Skipped = append(report.Skipped, rest.name)
					continue
				}
				report.Pending = append(report.Pending, rest.name)
			}
			return report, &RotationCommitError{Report: report, Err: err}
		}

		report.Rotated = append(report.Rotated, item.name)
	}

	return report, nil
}
