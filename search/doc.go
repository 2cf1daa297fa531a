// Copyright 2025 Poiesic Systems
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


// Package search provides similarity ranking and the retrieval pipeline.
//
// The Ranker embeds every document once at construction, caching vectors
// keyed by document id, and scores queries against those cached vectors by
// cosine similarity. The Pipeline orchestrates a query end to end:
//
//	concept match -> document filter -> similarity rank -> truncate -> snippet
//
// When concept matching narrows the candidate set to nothing (matched
// concepts that no document carries), the pipeline falls back to the full
// document set rather than returning zero results for a tagging gap.
//
// All pipeline state is immutable after construction; concurrent queries
// need no locking.
package search
