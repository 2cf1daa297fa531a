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


// Package concepts provides the business concept catalogue and query matching.
//
// The Graph type loads a declarative concept list from YAML and answers
// "which concepts does this text mention?" via case-insensitive substring
// matching of concept names and synonyms. Matching is intentionally literal:
// a synonym that happens to occur inside an unrelated word still matches.
// This is a known precision trade-off of the substring strategy, kept so a
// future matcher (fuzzy, stemmed) can be swapped in behind the Matcher
// interface without changing observable pipeline structure.
//
// The catalogue is immutable after Load and safe for concurrent use.
package concepts
