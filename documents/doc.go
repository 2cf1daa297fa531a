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


// Package documents provides the document catalogue.
//
// The Store loads markdown documents with YAML frontmatter from a directory,
// tags each document exactly once at load time with every concept mentioned
// in its title and body, and serves filtered candidate sets for retrieval.
// The tagging pass is the semantic pre-filtering investment that every later
// query reuses: queries only pay for set intersection, never re-matching.
//
// A Store is immutable after Load and safe for concurrent use.
package documents
