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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var regMux sync.Mutex
var registry *prometheus.Registry

var (
	queriesForwarded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledgergw_queries_total",
		Help: "Ledger queries forwarded by the gateway, by outcome",
	}, []string{"outcome"})
	commandsForwarded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledgergw_commands_total",
		Help: "Ledger commands forwarded by the gateway, by upstream status class",
	}, []string{"status"})
	endpointAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledgergw_endpoint_attempts_total",
		Help: "Failed candidate endpoint attempts before a final outcome",
	}, []string{"operation"})
)

// Registry returns the gateway's customized Prometheus registry
func Registry() *prometheus.Registry {
	regMux.Lock()
	defer regMux.Unlock()
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		registry.MustRegister(queriesForwarded)
		registry.MustRegister(commandsForwarded)
		registry.MustRegister(endpointAttempts)
	}
	return registry
}
