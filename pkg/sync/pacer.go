// Copyright 2025 hrtools LLC
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

package sync

import (
	"context"

	"golang.org/x/time/rate"
)

// BambooHR throttles aggressively; one wait is taken per unit of
// per-record work (employee processed, file downloaded, time-off record
// processed).
const defaultOpsPerSecond = 10

// ⏱️ Pacer gates per-record work to respect the remote API's throughput
// constraints. Inject NopPacer in tests.
type Pacer interface {
	Wait(ctx context.Context) error
}

// 🏭 NewRatePacer returns a token-bucket pacer allowing opsPerSecond
// operations per second
func NewRatePacer(opsPerSecond float64) Pacer {
	return &limiterPacer{limiter: rate.NewLimiter(rate.Limit(opsPerSecond), 1)}
}

type limiterPacer struct {
	limiter *rate.Limiter
}

func (p *limiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// 🚫 NopPacer never waits
type NopPacer struct{}

func (NopPacer) Wait(ctx context.Context) error { return nil }
