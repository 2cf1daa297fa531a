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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidConcept indicates a Concept failed validation.
	ErrInvalidConcept = errors.New("invalid concept")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyConceptId indicates the concept Id field is empty.
	ErrEmptyConceptId = errors.New("concept id cannot be empty")

	// ErrEmptyConceptName indicates the concept Name field is empty.
	ErrEmptyConceptName = errors.New("concept name cannot be empty")

	// ErrEmptyDocumentId indicates the document Id field is empty.
	ErrEmptyDocumentId = errors.New("document id cannot be empty")

	// ErrEmptyQuery indicates the query text is empty or blank.
	ErrEmptyQuery = errors.New("query text cannot be empty")

	// ErrInvalidTopK indicates an out-of-range top-k value.
	ErrInvalidTopK = errors.New("top_k must be at least 1")
)
