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

package gateway

import "github.com/hyperledger/firefly-common/pkg/fftypes"

// HealthStatus is the response of the health route, used by clients to
// decide whether the gateway's proxy surface is deployed.
type HealthStatus struct {
	Status  string          `json:"status"`
	Time    *fftypes.FFTime `json:"time"`
	Updates bool            `json:"updatesEnabled"`
	Oracle  bool            `json:"oracleEnabled"`
}

// PriceResult is the response of the oracle price route.
type PriceResult struct {
	Symbol string          `json:"symbol"`
	Price  float64         `json:"price"`
	Time   *fftypes.FFTime `json:"time"`
}

// LiveStatus is the response of the monitoring liveness/readiness routes.
type LiveStatus struct {
	OK bool `json:"ok"`
}
