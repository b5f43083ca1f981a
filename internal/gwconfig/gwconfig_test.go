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
	"testing"
	"time"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/stretchr/testify/assert"
)

func TestResetDefaults(t *testing.T) {
	Reset()

	assert.Equal(t, ClientModeProxy, config.GetString(ClientMode))
	assert.Equal(t, "prediction-markets", config.GetString(ClientApplicationID))
	assert.True(t, config.GetBool(ClientCacheEnabled))
	assert.Equal(t, 1*time.Minute, config.GetDuration(ClientCacheTTL))
	assert.Equal(t, 3, config.GetInt(ClientQueryRetries))
	assert.Equal(t, 1, config.GetInt(ClientCommandRetries))
	assert.Equal(t, 1*time.Second, config.GetDuration(ClientRetryInitDelay))
	assert.Equal(t, 10*time.Second, config.GetDuration(ClientRetryMaxDelay))

	assert.False(t, config.GetBool(APIUpdatesEnabled))
	assert.False(t, config.GetBool(MetricsEnabled))
	assert.False(t, config.GetBool(OracleEnabled))
	assert.Equal(t, 30*time.Second, config.GetDuration(OraclePollingInterval))
	assert.Equal(t, "Oracle", config.GetString(OracleParty))

	assert.Equal(t, "http://127.0.0.1:5108", ClientConfig.GetString(ffresty.HTTPConfigURL))
	assert.Equal(t, "http://127.0.0.1:7575", LedgerConfig.GetString(ffresty.HTTPConfigURL))
	assert.Equal(t, "https://api.redstone.finance", OracleAPIConfig.GetString(ffresty.HTTPConfigURL))
}

func TestResetIsRepeatable(t *testing.T) {
	Reset()
	config.Set(ClientMode, ClientModeDirect)
	assert.Equal(t, ClientModeDirect, config.GetString(ClientMode))

	Reset()
	assert.Equal(t, ClientModeProxy, config.GetString(ClientMode))
}
