package handler

import (
	"github.com/Daksharma90/AI-Interviewer/internal/interview"
	"github.com/Daksharma90/AI-Interviewer/internal/metrics"
	"github.com/Daksharma90/AI-Interviewer/internal/resume"
	"go.uber.org/zap"
)

type Handler struct {
	Logger     *zap.Logger
	Extractor  *resume.Extractor
	Interviews *interview.Service
	Metrics    *metrics.Metrics
}
