package service

import (
	"context"
	"fmt"

	"github.com/Egor213/UniLog/internal/repo"
	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupService runs the per-tenant install and uninstall hooks.
type SetupService struct {
	logs       Log
	tenantRepo repo.Tenant
}

func NewSetupService(l Log, tr repo.Tenant) *SetupService {
	return &SetupService{
		logs:       l,
		tenantRepo: tr,
	}
}

// Install registers the tenant and its self-logging channel with the default
// retention and threshold. Installing twice leaves the channel settings reset
// to those defaults.
func (s *SetupService) Install(ctx context.Context, tenantId int64) error {
	if err := s.tenantRepo.AddTenant(ctx, tenantId); err != nil {
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotInstallTenant, err))
	}

	ok, err := s.logs.UpsertChannel(ctx, tenantId, SelfChannel)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if !ok {
		return errorsUtils.WrapPathErr(ErrCannotInstallTenant)
	}

	log.WithField("tenant", tenantId).Info("Tenant installed")
	return nil
}

// InstallAll installs every tenant and keeps going past failures.
func (s *SetupService) InstallAll(ctx context.Context, tenantIds []int64) error {
	var failed []int64
	for _, id := range tenantIds {
		if err := s.Install(ctx, id); err != nil {
			log.WithFields(log.Fields{
				"tenant": id,
				"error":  err,
			}).Error("Failed to install tenant")
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", ErrCannotInstallTenant, failed))
	}
	return nil
}

// Uninstall keeps the tenant's channels and entries in place.
func (s *SetupService) Uninstall(ctx context.Context, tenantId int64) error {
	log.WithField("tenant", tenantId).Info("Tenant uninstalled, logs are kept")
	return nil
}

func (s *SetupService) ListTenants(ctx context.Context) ([]int64, error) {
	ids, err := s.tenantRepo.ListTenantIds(ctx)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotListTenants, err))
	}
	return ids, nil
}
