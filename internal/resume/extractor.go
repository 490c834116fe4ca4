// Package resume turns an uploaded resume file into a normalized
// candidate profile: local text extraction for PDF/DOCX/TXT, then LLM
// structuring of the raw text.
package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
	"github.com/Daksharma90/AI-Interviewer/pkg/model"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

// Structurer is the slice of the language service the extractor needs.
type Structurer interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type Extractor struct {
	ai  Structurer
	log *zap.Logger
}

func NewExtractor(ai Structurer, log *zap.Logger) *Extractor {
	return &Extractor{ai: ai, log: log}
}

// Extract parses the resume file and structures its text into a
// CandidateProfile. Unsupported extensions and blank documents fail;
// malformed structuring output degrades to a minimal profile so the
// interview can still proceed.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (model.CandidateProfile, error) {
	var (
		rawText string
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		rawText, err = extractPDFText(data)
	case ".docx":
		rawText, err = extractDocxText(data)
	case ".txt":
		rawText = string(data)
	default:
		return model.CandidateProfile{}, apperr.ErrUnsupportedFormat
	}
	if err != nil {
		return model.CandidateProfile{}, apperr.External("document", err)
	}

	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return model.CandidateProfile{}, apperr.ErrEmptyDocument
	}

	profile, err := e.structure(ctx, rawText)
	if err != nil {
		return model.CandidateProfile{}, err
	}
	profile.RawText = rawText
	return profile, nil
}

const structurePrompt = `You are an expert resume parser. Extract the following information from the provided resume text.
If a field is not found, use a reasonable default (e.g., empty string, empty list) or null.
Provide the output as a JSON object with the specified keys.

Resume Text:
---
%s
---

Required JSON Schema for the output:
{
    "name": "string (e.g., John Doe)",
    "email": "string (e.g., john.doe@example.com, nullable)",
    "phone": "string (e.g., +1-123-456-7890, nullable)",
    "experience": "string (A concise summary of total work experience, e.g., '5 years as Software Engineer, 2 years as Team Lead', nullable)",
    "skills": ["list of strings (e.g., Python, React, AWS, can be empty)"],
    "projects": [
        {"title": "string (title of the project)", "description": "string (concise description of the project and your role, can be empty)"}
    ],
    "education": "string (e.g., 'M.Sc. Computer Science from XYZ University', nullable)"
}
Ensure the output is valid JSON and strictly adheres to the schema.`

// structure asks the language service for the profile schema. A failed
// call propagates; a malformed reply degrades.
func (e *Extractor) structure(ctx context.Context, rawText string) (model.CandidateProfile, error) {
	raw, err := e.ai.GenerateJSON(ctx, fmt.Sprintf(structurePrompt, rawText))
	if err != nil {
		return model.CandidateProfile{}, err
	}

	var profile model.CandidateProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		e.log.Sugar().Warnw("resume structuring returned malformed JSON, using minimal profile", "err", err)
		return degradedProfile(), nil
	}
	return normalize(profile), nil
}

func degradedProfile() model.CandidateProfile {
	return model.CandidateProfile{
		Name:       "Candidate",
		Experience: "Could not parse structured details from the resume.",
		Skills:     []string{},
		Projects:   []model.Project{},
	}
}

func normalize(p model.CandidateProfile) model.CandidateProfile {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = "Candidate"
	}
	if strings.TrimSpace(p.Experience) == "" {
		p.Experience = "No experience mentioned."
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []model.Project{}
	}
	return p
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return stripDocxTags(doc.Editable().GetContent()), nil
}

// stripDocxTags flattens the docx body XML into plain text.
func stripDocxTags(content string) string {
	var (
		b      strings.Builder
		inTag  bool
		reader = strings.NewReader(content)
	)
	for {
		ch, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		switch {
		case ch == '<':
			inTag = true
		case ch == '>':
			inTag = false
		case !inTag:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
