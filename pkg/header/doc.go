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

// Package header provides common header types for integrity-gate data
// structures.
//
// The Header type is embedded in serialized verification outcomes and
// manifest results to provide consistent metadata and versioning:
//
//	type Header struct {
//	    Kind       Kind              // Resource type (e.g., "VerificationOutcome")
//	    APIVersion string            // Schema version (e.g., "gate.nvidia.com/v1alpha1")
//	    Metadata   map[string]string // id, timestamp, version
//	}
//
// Initialize a header before serializing a resource:
//
//	var h header.Header
//	h.Init(header.KindVerificationOutcome, verifier.APIVersion, version)
//
// Timestamps use RFC3339 format and ids are UUIDv4, so downstream pipeline
// stages can correlate gate decisions with fetch and install events.
package header
