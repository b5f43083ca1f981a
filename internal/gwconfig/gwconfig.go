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

package gwconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// APIDefaultRequestTimeout is the default server-side timeout for API calls
	APIDefaultRequestTimeout = ffc("api.defaultRequestTimeout")
	// APIMaxRequestTimeout is the maximum timeout callers can request with a Request-Timeout header
	APIMaxRequestTimeout = ffc("api.maxRequestTimeout")
	// APIUpdatesEnabled enables the WebSocket update broadcast channel
	APIUpdatesEnabled = ffc("api.updates.enabled")
	// ClientMode selects 'proxy' (gateway paths) or 'direct' (ledger JSON API paths)
	ClientMode = ffc("client.mode")
	// ClientApplicationID is stamped on every command submission
	ClientApplicationID = ffc("client.applicationId")
	// ClientCacheEnabled enables the client-side query result cache
	ClientCacheEnabled = ffc("client.cache.enabled")
	// ClientCacheTTL is the time-to-live for cached query results
	ClientCacheTTL = ffc("client.cache.ttl")
	// ClientQueryRetries is the retry budget for queries
	ClientQueryRetries = ffc("client.retry.queryRetries")
	// ClientCommandRetries is the (stricter) retry budget for commands
	ClientCommandRetries = ffc("client.retry.commandRetries")
	// ClientRetryInitDelay is the initial backoff delay
	ClientRetryInitDelay = ffc("client.retry.initialDelay")
	// ClientRetryMaxDelay caps the backoff delay
	ClientRetryMaxDelay = ffc("client.retry.maxDelay")
	// MetricsEnabled enables the monitoring server with prometheus metrics
	MetricsEnabled = ffc("metrics.enabled")
	// OracleEnabled enables the background oracle price monitor
	OracleEnabled = ffc("oracle.enabled")
	// OraclePollingInterval is the interval between oracle monitoring sweeps
	OraclePollingInterval = ffc("oracle.pollingInterval")
	// OracleParty is the ledger party the oracle monitor submits as
	OracleParty = ffc("oracle.party")
	// OraclePriceCacheSize bounds the short-lived price cache
	OraclePriceCacheSize = ffc("oracle.priceCacheSize")
	// OraclePriceCacheTTL is the time-to-live for cached price points
	OraclePriceCacheTTL = ffc("oracle.priceCacheTTL")
	// OracleFeeds is the list of market data feeds the oracle monitor maintains
	OracleFeeds = ffc("oracle.feeds")
)

// ClientModeProxy routes client traffic through the gateway's /api/v1 paths
const ClientModeProxy = "proxy"

// ClientModeDirect talks straight to the participant's JSON API paths
const ClientModeDirect = "direct"

var (
	// APIConfig is the HTTP configuration for the gateway API server
	APIConfig config.Section
	// CorsConfig is the CORS configuration shared by both servers
	CorsConfig config.Section
	// MetricsConfig is the HTTP configuration for the monitoring server
	MetricsConfig config.Section
	// LedgerConfig is the HTTP client configuration for the upstream participant
	LedgerConfig config.Section
	// ClientConfig is the HTTP client configuration for the embedded ledger client
	ClientConfig config.Section
	// OracleConfig holds the oracle monitor settings, including its feed list
	OracleConfig config.Section
	// OracleAPIConfig is the HTTP client configuration for the external price feed API
	OracleAPIConfig config.Section
)

// OracleFeedConfig keys within each oracle.feeds[] array entry
const (
	OracleFeedMarketID     = "marketId"
	OracleFeedSymbol       = "symbol"
	OracleFeedResolveAbove = "resolveAbove"
)

func setDefaults() {
	viper.SetDefault(string(APIDefaultRequestTimeout), "30s")
	viper.SetDefault(string(APIMaxRequestTimeout), "10m")
	viper.SetDefault(string(APIUpdatesEnabled), false)
	viper.SetDefault(string(ClientMode), ClientModeProxy)
	viper.SetDefault(string(ClientApplicationID), "prediction-markets")
	viper.SetDefault(string(ClientCacheEnabled), true)
	viper.SetDefault(string(ClientCacheTTL), "1m")
	viper.SetDefault(string(ClientQueryRetries), 3)
	viper.SetDefault(string(ClientCommandRetries), 1)
	viper.SetDefault(string(ClientRetryInitDelay), "1s")
	viper.SetDefault(string(ClientRetryMaxDelay), "10s")
	viper.SetDefault(string(MetricsEnabled), false)
	viper.SetDefault(string(OracleEnabled), false)
	viper.SetDefault(string(OraclePollingInterval), "30s")
	viper.SetDefault(string(OracleParty), "Oracle")
	viper.SetDefault(string(OraclePriceCacheSize), 128)
	viper.SetDefault(string(OraclePriceCacheTTL), "30s")
}

func Reset() {
	config.RootConfigReset(setDefaults)

	APIConfig = config.RootSection("api")
	httpserver.InitHTTPConfig(APIConfig, 5108)

	CorsConfig = config.RootSection("cors")
	httpserver.InitCORSConfig(CorsConfig)

	MetricsConfig = config.RootSection("metrics")
	httpserver.InitHTTPConfig(MetricsConfig, 6108)

	LedgerConfig = config.RootSection("ledger")
	ffresty.InitConfig(LedgerConfig)
	LedgerConfig.SetDefault(ffresty.HTTPConfigURL, "http://127.0.0.1:7575")

	ClientConfig = config.RootSection("client")
	ffresty.InitConfig(ClientConfig)
	ClientConfig.SetDefault(ffresty.HTTPConfigURL, "http://127.0.0.1:5108")

	OracleConfig = config.RootSection("oracle")
	OracleAPIConfig = OracleConfig.SubSection("api")
	ffresty.InitConfig(OracleAPIConfig)
	OracleAPIConfig.SetDefault(ffresty.HTTPConfigURL, "https://api.redstone.finance")
}
