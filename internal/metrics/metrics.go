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

package metrics

import (
	"context"
	"strconv"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
)

// Metrics is the gateway's view of its own proxy activity. All methods are
// no-ops when metrics are disabled.
type Metrics interface {
	IsMetricsEnabled() bool

	IncQueryForwarded(ctx context.Context, outcome string)
	IncCommandForwarded(ctx context.Context, status int)
	AddEndpointAttempts(ctx context.Context, operation string, count int)
}

// Query outcome labels
const (
	QueryOutcomeForwarded = "forwarded"
	QueryOutcomeSoftEmpty = "soft_empty"
)

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
}

func NewMetricsManager(ctx context.Context) Metrics {
	return &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(gwconfig.MetricsEnabled),
	}
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

func (mm *metricsManager) IncQueryForwarded(_ context.Context, outcome string) {
	if mm.metricsEnabled {
		queriesForwarded.WithLabelValues(outcome).Inc()
	}
}

func (mm *metricsManager) IncCommandForwarded(_ context.Context, status int) {
	if mm.metricsEnabled {
		commandsForwarded.WithLabelValues(statusClass(status)).Inc()
	}
}

func (mm *metricsManager) AddEndpointAttempts(_ context.Context, operation string, count int) {
	if mm.metricsEnabled && count > 0 {
		endpointAttempts.WithLabelValues(operation).Add(float64(count))
	}
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
