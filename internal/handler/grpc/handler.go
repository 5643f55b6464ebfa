// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health protocol for the portal.
//
// The overall status ("") is SERVING for as long as the process runs, which
// mirrors GET /api/health. The [DocumentStoreService] status follows the
// remote store connection, so orchestrators can tell the limited mode apart
// from a fully connected instance.
package grpc

import (
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/store"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// DocumentStoreService is the health service name reporting the remote
// document store connection.
const DocumentStoreService = "docstore"

// StateSubscriber delivers remote store connection state changes.
// [store.Connector] implements it.
type StateSubscriber interface {
	Subscribe(fn func(store.ConnectionState))
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	logger *logger.Logger
}

// NewHandler builds the health service and subscribes it to subscriber. A nil
// subscriber leaves [DocumentStoreService] NOT_SERVING.
func NewHandler(subscriber StateSubscriber, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}

	h.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(DocumentStoreService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	if subscriber != nil {
		subscriber.Subscribe(h.onStoreState)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	grpc_health_v1.RegisterHealthServer(registrar, h.health)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) onStoreState(state store.ConnectionState) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if state == store.StateConnected {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus(DocumentStoreService, status)
	h.logger.Debug().Stringer("state", state).Stringer("status", status).Msg("docstore health updated")
}
