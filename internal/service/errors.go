package service

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrChannelNotFound     = errors.New("channel not found")
	ErrCannotLoadChannels  = errors.New("cannot load channels")
	ErrCannotGetEntries    = errors.New("cannot get entries")
	ErrCannotInstallTenant = errors.New("cannot install tenant")
	ErrCannotListTenants   = errors.New("cannot list tenants")
)
