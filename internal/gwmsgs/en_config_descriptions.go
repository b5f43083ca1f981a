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

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigAPIAddress               = ffc("config.api.address", "Listener address for the gateway API", i18n.StringType)
	ConfigAPIPort                  = ffc("config.api.port", "Listener port for the gateway API", i18n.IntType)
	ConfigAPIDefaultRequestTimeout = ffc("config.api.defaultRequestTimeout", "Default server-side request timeout for API calls", i18n.TimeDurationType)
	ConfigAPIMaxRequestTimeout     = ffc("config.api.maxRequestTimeout", "Maximum server-side request timeout a caller can request with a Request-Timeout header", i18n.TimeDurationType)
	ConfigAPIUpdatesEnabled        = ffc("config.api.updates.enabled", "Enables the WebSocket update broadcast channel on the gateway API", i18n.BooleanType)

	ConfigLedgerURL = ffc("config.ledger.url", "Base URL of the Canton participant JSON API the gateway forwards to", i18n.StringType)

	ConfigClientMode           = ffc("config.client.mode", "'proxy' to route client calls via the gateway paths, 'direct' to use the ledger JSON API paths", i18n.StringType)
	ConfigClientURL            = ffc("config.client.url", "Base URL the embedded ledger client connects to (the gateway in proxy mode, the participant in direct mode)", i18n.StringType)
	ConfigClientApplicationID  = ffc("config.client.applicationId", "Application ID stamped on every command submission", i18n.StringType)
	ConfigClientCacheEnabled   = ffc("config.client.cache.enabled", "Enables the client-side query result cache", i18n.BooleanType)
	ConfigClientCacheTTL       = ffc("config.client.cache.ttl", "Time-to-live for cached query results", i18n.TimeDurationType)
	ConfigClientQueryRetries   = ffc("config.client.retry.queryRetries", "Maximum number of retries for ledger queries", i18n.IntType)
	ConfigClientCommandRetries = ffc("config.client.retry.commandRetries", "Maximum number of retries for ledger commands (commands are not idempotent by default, so keep this low)", i18n.IntType)
	ConfigClientRetryInitDelay = ffc("config.client.retry.initialDelay", "Initial retry delay", i18n.TimeDurationType)
	ConfigClientRetryMaxDelay  = ffc("config.client.retry.maxDelay", "Maximum delay between retries", i18n.TimeDurationType)

	ConfigMetricsEnabled = ffc("config.metrics.enabled", "Enables the metrics monitoring server", i18n.BooleanType)
	ConfigMetricsAddress = ffc("config.metrics.address", "Listener address for the monitoring server", i18n.StringType)
	ConfigMetricsPort    = ffc("config.metrics.port", "Listener port for the monitoring server", i18n.IntType)

	ConfigOracleEnabled           = ffc("config.oracle.enabled", "Enables the background oracle price monitor", i18n.BooleanType)
	ConfigOraclePollingInterval   = ffc("config.oracle.pollingInterval", "Interval between oracle monitoring sweeps", i18n.TimeDurationType)
	ConfigOracleParty             = ffc("config.oracle.party", "Ledger party used by the oracle monitor for data feed submissions", i18n.StringType)
	ConfigOracleAPIURL            = ffc("config.oracle.api.url", "Base URL of the external price feed API", i18n.StringType)
	ConfigOraclePriceCacheSize    = ffc("config.oracle.priceCacheSize", "Maximum number of price points held in the short-lived price cache", i18n.IntType)
	ConfigOraclePriceCacheTTL     = ffc("config.oracle.priceCacheTTL", "Time-to-live for cached price points", i18n.TimeDurationType)
	ConfigOracleFeedsMarketID     = ffc("config.oracle.feeds[].marketId", "Market ID the data feed publishes to", i18n.StringType)
	ConfigOracleFeedsSymbol       = ffc("config.oracle.feeds[].symbol", "Price feed symbol to monitor (e.g. BTC)", i18n.StringType)
	ConfigOracleFeedsResolveAbove = ffc("config.oracle.feeds[].resolveAbove", "Price threshold above which the market resolution choice is exercised (0 disables resolution)", i18n.FloatType)
)
