// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package verifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Verification outcome metrics
	verificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gate_verifications_total",
			Help: "Total number of file verification attempts",
		},
		[]string{"status", "action"},
	)

	verificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gate_verification_duration_seconds",
			Help:    "Time taken to verify a single file",
			Buckets: []float64{0.01, 0.05, 0.25, 1, 5, 30, 120},
		},
	)

	userOverridesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gate_user_overrides_total",
			Help: "Total number of unverified files accepted via interactive confirmation",
		},
	)
)
