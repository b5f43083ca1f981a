// Copyright © 2025 Wolf Edge Labs, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gateway assembles the ledger gateway server: the REST routes the
// UI talks to, the resolver that finds a working participant endpoint, the
// optional WebSocket update channel, and the optional oracle monitor.
package gateway

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/metrics"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/oracle"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/resolver"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/ws"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/ledgerclient"
)

type Manager interface {
	Start() error
	Close()
}

type manager struct {
	ctx       context.Context
	cancelCtx func()

	resolver      *resolver.Resolver
	metrics       metrics.Metrics
	wsServer      ws.WebSocketServer
	priceClient   *oracle.PriceClient
	oracleMonitor *oracle.Monitor

	apiServer         httpserver.HTTPServer
	metricsServer     httpserver.HTTPServer
	apiServerDone     chan error
	metricsServerDone chan error

	updatesEnabled bool
	started        bool
}

func NewManager(ctx context.Context) (Manager, error) {
	var err error
	m := &manager{
		apiServerDone:     make(chan error),
		metricsServerDone: make(chan error),
		updatesEnabled:    config.GetBool(gwconfig.APIUpdatesEnabled),
	}
	m.ctx, m.cancelCtx = context.WithCancel(ctx)

	m.resolver, err = resolver.NewResolver(ctx, gwconfig.LedgerConfig)
	if err != nil {
		return nil, err
	}
	m.metrics = metrics.NewMetricsManager(ctx)
	if m.updatesEnabled {
		m.wsServer = ws.NewWebSocketServer(m.ctx)
	}
	m.priceClient, err = oracle.NewPriceClient(ctx, gwconfig.OracleAPIConfig)
	if err != nil {
		return nil, err
	}
	if config.GetBool(gwconfig.OracleEnabled) {
		// The oracle acts through the same client surface as any other ledger
		// consumer, pointed at this gateway or straight at the participant
		// depending on the configured client mode.
		ledger, err := ledgerclient.NewLedgerClient(ctx, gwconfig.ClientConfig, nil)
		if err != nil {
			return nil, err
		}
		m.oracleMonitor = oracle.NewMonitor(m.ctx, m.priceClient, ledger)
	}

	m.apiServer, err = httpserver.NewHTTPServer(ctx, "api", m.router(), m.apiServerDone, gwconfig.APIConfig, gwconfig.CorsConfig)
	if err != nil {
		return nil, err
	}
	if m.metrics.IsMetricsEnabled() {
		m.metricsServer, err = httpserver.NewHTTPServer(ctx, "metrics", m.monitoringRouter(), m.metricsServerDone, gwconfig.MetricsConfig, gwconfig.CorsConfig)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *manager) runAPIServer() {
	m.apiServer.ServeHTTP(m.ctx)
}

func (m *manager) runMetricsServer() {
	m.metricsServer.ServeHTTP(m.ctx)
}

func (m *manager) Start() error {
	go m.runAPIServer()
	if m.metricsServer != nil {
		go m.runMetricsServer()
	}
	if m.oracleMonitor != nil {
		if err := m.oracleMonitor.Start(); err != nil {
			return err
		}
	}
	m.started = true
	log.L(m.ctx).Infof("Ledger gateway started")
	return nil
}

func (m *manager) Close() {
	m.cancelCtx()
	if m.started {
		m.started = false
		<-m.apiServerDone
		if m.metricsServer != nil {
			<-m.metricsServerDone
		}
		if m.oracleMonitor != nil {
			m.oracleMonitor.Close()
		}
		if m.wsServer != nil {
			m.wsServer.Close()
		}
	}
}
