package analysis

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/gollem"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// buildSystemPrompt creates the fixed system prompt for the compliance analysis
func buildSystemPrompt() string {
	var sb strings.Builder

	sb.WriteString("You are a UK compliance expert specializing in GDPR and Cyber Essentials certification.\n\n")
	sb.WriteString("## Instructions:\n\n")
	sb.WriteString("1. Analyze the provided policy document and produce a detailed compliance gap analysis.\n")
	sb.WriteString("2. Score the document against each framework from 0 to 100 and classify the status.\n")
	sb.WriteString("3. List concrete strengths found in the document, specific gaps or missing elements, and actionable recommendations for each framework.\n")
	sb.WriteString("4. Propose priority actions, each with a priority, the framework it addresses, and a short rationale.\n")
	sb.WriteString("5. Finish with a brief paragraph summarizing the compliance risk exposure.\n")
	sb.WriteString("6. Be specific and practical in your recommendations, tailored for UK SMEs with 5-50 employees.\n")

	return sb.String()
}

// buildUserPrompt creates the user prompt with document metadata and content
func buildUserPrompt(input Input, text string) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following policy document and provide a detailed compliance gap analysis.\n\n")
	sb.WriteString("## Document\n\n")
	fmt.Fprintf(&sb, "**Filename:** %s\n", input.Filename)
	fmt.Fprintf(&sb, "**MIME type:** %s\n", input.MIMEType)
	sb.WriteString("\n## Content\n\n")
	sb.WriteString("---\n")
	sb.WriteString(text)
	sb.WriteString("\n---\n")

	return sb.String()
}

// buildResponseSchema creates the JSON schema for structured output
func buildResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "ComplianceAnalysisResponse",
		Description: "Compliance gap analysis of a policy document",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"document_type": {
				Type:        gollem.TypeString,
				Description: "What type of policy the document appears to be",
			},
			"overall_assessment": {
				Type:        gollem.TypeString,
				Description: "Brief overall assessment of the document",
			},
			"gdpr_compliance":             buildFrameworkSchema("UK GDPR"),
			"cyber_essentials_compliance": buildFrameworkSchema("Cyber Essentials"),
			"priority_actions": {
				Type:        gollem.TypeArray,
				Description: "Remediation actions ordered by importance",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"priority": {
							Type:        gollem.TypeString,
							Description: "How urgent the action is",
							Enum: []string{
								types.PriorityHigh.String(),
								types.PriorityMedium.String(),
								types.PriorityLow.String(),
							},
						},
						"action": {
							Type:        gollem.TypeString,
							Description: "Specific action to take",
						},
						"framework": {
							Type:        gollem.TypeString,
							Description: "Which framework the action addresses",
							Enum: []string{
								types.FrameworkGDPR.String(),
								types.FrameworkCyberEssentials.String(),
								types.FrameworkBoth.String(),
							},
						},
						"rationale": {
							Type:        gollem.TypeString,
							Description: "Why this action is important",
						},
					},
					Required: []string{"priority", "action", "framework", "rationale"},
				},
			},
			"risk_summary": {
				Type:        gollem.TypeString,
				Description: "Brief paragraph summarizing the compliance risk exposure",
			},
		},
		Required: []string{
			"document_type",
			"overall_assessment",
			"gdpr_compliance",
			"cyber_essentials_compliance",
			"priority_actions",
			"risk_summary",
		},
	}
}

// buildFrameworkSchema creates the per-framework assessment schema
func buildFrameworkSchema(name string) *gollem.Parameter {
	return &gollem.Parameter{
		Type:        gollem.TypeObject,
		Description: fmt.Sprintf("Assessment of the document against %s", name),
		Properties: map[string]*gollem.Parameter{
			"score": {
				Type:        gollem.TypeInteger,
				Description: "Compliance score from 0 to 100",
			},
			"status": {
				Type:        gollem.TypeString,
				Description: "Overall verdict against the framework",
				Enum: []string{
					types.ComplianceStatusCompliant.String(),
					types.ComplianceStatusPartial.String(),
					types.ComplianceStatusNonCompliant.String(),
					types.ComplianceStatusNotApplicable.String(),
				},
			},
			"strengths": {
				Type:        gollem.TypeArray,
				Description: "Strengths found in the document",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
			},
			"gaps": {
				Type:        gollem.TypeArray,
				Description: "Specific gaps or missing elements",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
			},
			"recommendations": {
				Type:        gollem.TypeArray,
				Description: "Actionable recommendations to address the gaps",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
			},
		},
		Required: []string{"score", "status", "strengths", "gaps", "recommendations"},
	}
}
