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

package canton

import (
	"crypto/rand"
	"fmt"
	"time"

	ulid "github.com/oklog/ulid/v2"
)

var ulidReader = &ulid.LockedMonotonicReader{
	MonotonicReader: &ulid.MonotonicEntropy{
		Reader: rand.Reader,
	},
}

// NewCommandID returns a command ID for a submission, prefixed with the
// operation name for readability in participant logs. ULIDs combine a
// millisecond timestamp with monotonic random entropy, so IDs stay unique
// across concurrent submitters.
func NewCommandID(op string) string {
	u := ulid.MustNew(ulid.Timestamp(time.Now()), ulidReader)
	return fmt.Sprintf("%s-%s", op, u.String())
}
