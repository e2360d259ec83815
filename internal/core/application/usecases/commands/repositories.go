// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: authorization, validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SellerRequestRepoFactory provides access to the seller request
	// repository within a transaction.
	SellerRequestRepoFactory interface {
		SellerRequestRepository() ports.SellerRequestRepository
	}

	// SellerRepoFactory provides access to the seller repository within a
	// transaction.
	SellerRepoFactory interface {
		SellerRepository() ports.SellerRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SellerProvisionerFactory provides access to the seller-creation
	// trigger within a transaction.
	SellerProvisionerFactory interface {
		SellerProvisioner() ports.SellerProvisioner
	}

	// SellerRequestUoW manages transactions for request-only operations
	// (submit, reject).
	SellerRequestUoW interface {
		TxManager
		SellerRequestRepoFactory
	}

	// SellerRequestUoWFactory creates new seller request unit of work instances.
	SellerRequestUoWFactory interface {
		Create() SellerRequestUoW
	}

	// OnboardingUoW manages transactions that decide a request and provision
	// the seller record together (approve).
	OnboardingUoW interface {
		TxManager
		SellerRequestRepoFactory
		SellerProvisionerFactory
	}

	// OnboardingUoWFactory creates new onboarding unit of work instances.
	OnboardingUoWFactory interface {
		Create() OnboardingUoW
	}

	// SellerUoW manages transactions for seller-only operations (verify).
	SellerUoW interface {
		TxManager
		SellerRepoFactory
	}

	// SellerUoWFactory creates new seller unit of work instances.
	SellerUoWFactory interface {
		Create() SellerUoW
	}

	// OrderUoW manages transactions for order-only operations (mark paid).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
