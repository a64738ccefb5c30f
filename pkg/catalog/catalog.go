// Package catalog loads the static questionnaire and risk template data
// shipped with the server binary. Defaults are embedded; both files can be
// overridden at startup for trials with adjusted question sets.
package catalog

import (
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

//go:embed questions.toml
var defaultQuestionsTOML []byte

//go:embed risk_templates.toml
var defaultTemplatesTOML []byte

type questionsDoc struct {
	Questions []questionDoc `toml:"questions"`
}

type questionDoc struct {
	ID          string `toml:"id"`
	Category    string `toml:"category"`
	Subcategory string `toml:"subcategory"`
	Question    string `toml:"question"`
	Weight      int    `toml:"weight"`
	Guidance    string `toml:"guidance"`
}

type templateDoc struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Likelihood  string `toml:"likelihood"`
	Impact      string `toml:"impact"`
	Category    string `toml:"category"`
	Mitigation  string `toml:"mitigation"`
}

// Catalog is the validated, immutable questionnaire and template data
type Catalog struct {
	questions []model.Question
	byID      map[string]model.Question
	templates map[types.BusinessType][]model.RiskTemplate
}

// New builds a catalog from already-converted domain data and validates it.
// Question order is preserved; it defines the tie-break order of gap lists.
func New(questions []model.Question, templates map[types.BusinessType][]model.RiskTemplate) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, goerr.New("catalog has no questions")
	}

	byID := make(map[string]model.Question, len(questions))
	for i := range questions {
		q := questions[i]
		if err := q.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid question")
		}
		if _, exists := byID[q.ID]; exists {
			return nil, goerr.New("duplicate question ID", goerr.V("id", q.ID))
		}
		byID[q.ID] = q
	}

	for _, bt := range types.AllBusinessTypes() {
		tmpls, ok := templates[bt]
		if !ok || len(tmpls) == 0 {
			return nil, goerr.New("business type has no risk templates", goerr.V("business_type", bt))
		}
		for i := range tmpls {
			if err := tmpls[i].Validate(); err != nil {
				return nil, goerr.Wrap(err, "invalid risk template", goerr.V("business_type", bt))
			}
		}
	}
	for bt := range templates {
		if !bt.IsValid() {
			return nil, goerr.New("unknown business type in templates", goerr.V("business_type", bt))
		}
	}

	return &Catalog{
		questions: questions,
		byID:      byID,
		templates: templates,
	}, nil
}

// Load parses the embedded catalog data
func Load() (*Catalog, error) {
	return parse(defaultQuestionsTOML, defaultTemplatesTOML)
}

// LoadFiles reads catalog data from explicit paths. An empty path keeps the
// embedded default for that file.
func LoadFiles(questionsPath, templatesPath string) (*Catalog, error) {
	questionsData := defaultQuestionsTOML
	if questionsPath != "" {
		data, err := os.ReadFile(questionsPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read questions file", goerr.V("path", questionsPath))
		}
		questionsData = data
	}

	templatesData := defaultTemplatesTOML
	if templatesPath != "" {
		data, err := os.ReadFile(templatesPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read risk templates file", goerr.V("path", templatesPath))
		}
		templatesData = data
	}

	return parse(questionsData, templatesData)
}

func parse(questionsData, templatesData []byte) (*Catalog, error) {
	var qDoc questionsDoc
	if err := toml.Unmarshal(questionsData, &qDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse questions TOML")
	}

	questions := make([]model.Question, 0, len(qDoc.Questions))
	for _, doc := range qDoc.Questions {
		category, err := types.ParseQuestionCategory(doc.Category)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid question category", goerr.V("id", doc.ID))
		}
		questions = append(questions, model.Question{
			ID:          doc.ID,
			Category:    category,
			Subcategory: doc.Subcategory,
			Text:        doc.Question,
			Weight:      doc.Weight,
			Guidance:    doc.Guidance,
		})
	}

	var tDoc map[string][]templateDoc
	if err := toml.Unmarshal(templatesData, &tDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse risk templates TOML")
	}

	templates := make(map[types.BusinessType][]model.RiskTemplate, len(tDoc))
	for key, docs := range tDoc {
		bt := types.BusinessType(key)
		tmpls := make([]model.RiskTemplate, 0, len(docs))
		for _, doc := range docs {
			likelihood, err := types.ParseLikelihood(doc.Likelihood)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid template likelihood", goerr.V("title", doc.Title))
			}
			impact, err := types.ParseImpact(doc.Impact)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid template impact", goerr.V("title", doc.Title))
			}
			tmpls = append(tmpls, model.RiskTemplate{
				Title:       doc.Title,
				Description: doc.Description,
				Likelihood:  likelihood,
				Impact:      impact,
				Category:    doc.Category,
				Mitigation:  doc.Mitigation,
			})
		}
		templates[bt] = tmpls
	}

	return New(questions, templates)
}

// Questions returns all questions in catalog order
func (x *Catalog) Questions() []model.Question {
	questions := make([]model.Question, len(x.questions))
	copy(questions, x.questions)
	return questions
}

// Question looks up a single question by ID
func (x *Catalog) Question(id string) (model.Question, bool) {
	q, ok := x.byID[id]
	return q, ok
}

// CategoryCounts returns the number of questions per category
func (x *Catalog) CategoryCounts() map[types.QuestionCategory]int {
	counts := make(map[types.QuestionCategory]int)
	for _, q := range x.questions {
		counts[q.Category]++
	}
	return counts
}

// TemplatesFor returns the risk templates of a business type. Validation in
// New guarantees every valid business type has at least one template.
func (x *Catalog) TemplatesFor(bt types.BusinessType) []model.RiskTemplate {
	tmpls := make([]model.RiskTemplate, len(x.templates[bt]))
	copy(tmpls, x.templates[bt])
	return tmpls
}
