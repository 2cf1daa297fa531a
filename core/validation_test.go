package core

import (
	"errors"
	"testing"
)

func TestValidateConcept(t *testing.T) {
	tests := []struct {
		name    string
		concept *Concept
		wantErr error
	}{
		{
			name: "valid concept",
			concept: &Concept{
				Id:   "employee_onboarding",
				Name: "Employee Onboarding",
			},
			wantErr: nil,
		},
		{
			name: "valid concept with synonyms",
			concept: &Concept{
				Id:       "payroll_processing",
				Name:     "Payroll Processing",
				Synonyms: []string{"payroll", "salary processing"},
			},
			wantErr: nil,
		},
		{
			name: "valid concept with dangling related links",
			concept: &Concept{
				Id:        "procurement",
				Name:      "Procurement",
				RelatedTo: []string{"does_not_exist"},
			},
			wantErr: nil,
		},
		{
			name:    "nil concept",
			concept: nil,
			wantErr: ErrInvalidConcept,
		},
		{
			name: "empty id",
			concept: &Concept{
				Name: "Procurement",
			},
			wantErr: ErrEmptyConceptId,
		},
		{
			name: "empty name",
			concept: &Concept{
				Id: "procurement",
			},
			wantErr: ErrEmptyConceptName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConcept(tt.concept)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateConcept() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateConcept() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name     string
		document *Document
		wantErr  error
	}{
		{
			name: "valid document",
			document: &Document{
				Id:    "doc1",
				Title: "Employee Onboarding Procedure",
				Body:  "New hires complete orientation during their first week.",
			},
			wantErr: nil,
		},
		{
			name: "valid document with empty body",
			document: &Document{
				Id:    "doc2",
				Title: "Empty Placeholder",
			},
			wantErr: nil,
		},
		{
			name:     "nil document",
			document: nil,
			wantErr:  ErrInvalidDocument,
		},
		{
			name: "empty id",
			document: &Document{
				Title: "Untitled",
			},
			wantErr: ErrEmptyDocumentId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.document)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		topK    int
		wantErr error
	}{
		{name: "valid query", text: "how do new hires get benefits?", topK: 5, wantErr: nil},
		{name: "top_k of one", text: "payroll", topK: 1, wantErr: nil},
		{name: "empty text", text: "", topK: 5, wantErr: ErrEmptyQuery},
		{name: "blank text", text: "   \t\n", topK: 5, wantErr: ErrEmptyQuery},
		{name: "zero top_k", text: "payroll", topK: 0, wantErr: ErrInvalidTopK},
		{name: "negative top_k", text: "payroll", topK: -3, wantErr: ErrInvalidTopK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.text, tt.topK)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateQuery() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQuery() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
