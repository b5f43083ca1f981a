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

// Package backoff wraps the common retry engine with a bounded-attempt,
// error-classifying policy. The delay doubles between attempts, capped at
// MaxDelay.
package backoff

import (
	"context"
	"time"

	"github.com/hyperledger/firefly-common/pkg/retry"
)

// Policy performs an operation with up to MaxRetries retries (MaxRetries+1
// total tries). ShouldRetry decides whether a given failure is transient;
// when nil every error is retried up to the budget. Callers decide
// classification - queries and commands carry different budgets because
// commands are not idempotent by default.
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	ShouldRetry  func(error) bool
}

// Do runs op, retrying per the policy. It returns nil on the first success,
// or the last underlying error once the budget is exhausted or ShouldRetry
// rejects the failure. Waiting between attempts is the only suspension point
// and honors ctx cancellation.
func (p *Policy) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	r := &retry.Retry{
		InitialDelay: p.InitialDelay,
		MaximumDelay: p.MaxDelay,
		Factor:       2.0,
	}
	var lastErr error
	doErr := r.Do(ctx, name, func(attempt int) (bool, error) {
		lastErr = op(ctx)
		if lastErr == nil {
			return false, nil
		}
		if attempt > p.MaxRetries {
			return false, lastErr
		}
		if p.ShouldRetry != nil && !p.ShouldRetry(lastErr) {
			return false, lastErr
		}
		return true, lastErr
	})
	if lastErr != nil {
		return lastErr
	}
	return doErr
}
