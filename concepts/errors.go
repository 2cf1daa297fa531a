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


package concepts

import "errors"

var (
	// ErrNoConcepts is returned when the source contains no concept records.
	ErrNoConcepts = errors.New("concepts source contains no concepts")

	// ErrDuplicateConceptId is returned when two concepts share an id.
	ErrDuplicateConceptId = errors.New("duplicate concept id")
)
