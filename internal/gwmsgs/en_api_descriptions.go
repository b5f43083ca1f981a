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

package gwmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffm = func(key, translation string) i18n.MessageKey {
	return i18n.FFM(language.AmericanEnglish, key, translation)
}

//revive:disable
var (
	APIEndpointPostQuery      = ffm("api.endpoints.post.query", "Forward a contract query to the Canton participant, negotiating the endpoint path")
	APIEndpointPostCommand    = ffm("api.endpoints.post.command", "Forward a command submission to the Canton participant, negotiating endpoint path and body shape")
	APIEndpointGetHealth      = ffm("api.endpoints.get.health", "Confirm the gateway API routes are deployed and responding")
	APIEndpointGetOraclePrice = ffm("api.endpoints.get.oracle.price", "Fetch the latest price for a symbol from the external price feed")
	APIEndpointGetLiveness    = ffm("api.endpoints.get.livez", "Get the liveness status of the gateway")
	APIEndpointGetReadiness   = ffm("api.endpoints.get.readyz", "Get the readiness status of the gateway")

	APIParamSymbol = ffm("api.params.symbol", "Price feed symbol (e.g. BTC, ETH)")
)
