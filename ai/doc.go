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


// Package ai provides the embedding abstraction used for similarity ranking.
//
// The Embedder interface decouples the retrieval pipeline from any concrete
// embedding model: ranking depends only on the capability "text in, fixed
// length vector out". The package includes two implementations:
//
//   - ai/openai: production implementation over OpenAI-compatible APIs
//   - ai/mock: deterministic test double, no external dependencies
//
// Public constructors return the Embedder interface to enforce abstraction;
// mock constructors return concrete types so tests can inject behavior and
// assert call counts.
package ai
