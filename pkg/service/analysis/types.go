package analysis

import (
	"context"

	"github.com/complypilot/complypilot/pkg/domain/model"
)

// Service analyzes uploaded policy documents against UK compliance frameworks
type Service interface {
	// AnalyzeDocument runs a GDPR / Cyber Essentials gap analysis of a single
	// document and returns the structured result
	AnalyzeDocument(ctx context.Context, input Input) (*model.DocumentAnalysis, error)
}

// Input carries one uploaded document into the analyzer
type Input struct {
	Filename string
	MIMEType string
	Content  []byte
}
