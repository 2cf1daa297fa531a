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

import (
	"fmt"
	"strings"
)

// ValidateConcept validates a Concept according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Name must not be empty
//
// NOT validated:
//   - RelatedTo (dangling references are tolerated by design)
//   - Synonyms (an empty list is valid)
func ValidateConcept(concept *Concept) error {
	if concept == nil {
		return fmt.Errorf("%w: concept is nil", ErrInvalidConcept)
	}

	if concept.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyConceptId)
	}

	if concept.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyConceptName)
	}

	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//
// NOT validated (populated at load time):
//   - ConceptIds (empty until tagging runs)
//   - Body (an empty body yields an empty snippet, not an error)
func ValidateDocument(document *Document) error {
	if document == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if document.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentId)
	}

	return nil
}

// ValidateQuery validates the per-request query parameters.
// A request that fails validation is rejected before any pipeline
// stage executes.
func ValidateQuery(text string, topK int) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyQuery
	}
	if topK < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTopK, topK)
	}
	return nil
}
