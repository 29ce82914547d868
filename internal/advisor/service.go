package advisor

import (
	"context"

	"go.uber.org/zap"

	"BharatYield/internal/logger"
)

type Service struct {
	gen Generator
	log *zap.Logger
}

// NewService accepts a nil generator, in which case every call returns the
// fallback.
func NewService(gen Generator, log *zap.Logger) *Service {
	return &Service{gen: gen, log: logger.OrNop(log)}
}

// Analyze never fails; generator and parse errors are logged and replaced by
// Fallback.
func (s *Service) Analyze(ctx context.Context, req Request) ComprehensiveAnalysis {
	if s.gen == nil {
		return Fallback(req.SoilSample)
	}
	text, err := s.gen.Generate(ctx, BuildPrompt(req))
	if err != nil {
		s.log.Warn("advisory generation failed, using fallback", zap.Error(err))
		return Fallback(req.SoilSample)
	}
	a, err := ParseAnalysis(text)
	if err != nil {
		s.log.Warn("advisory reply unusable, using fallback", zap.Error(err), zap.Int("reply_len", len(text)))
		return Fallback(req.SoilSample)
	}
	return a
}

func (s *Service) AnalyzeSoilCard(ctx context.Context, documentText string) SoilHealthAnalysis {
	if s.gen == nil {
		return SoilCardFallback()
	}
	text, err := s.gen.Generate(ctx, BuildSoilCardPrompt(documentText))
	if err != nil {
		s.log.Warn("soil card generation failed, using fallback", zap.Error(err))
		return SoilCardFallback()
	}
	sh, err := ParseSoilHealth(text)
	if err != nil {
		s.log.Warn("soil card reply unusable, using fallback", zap.Error(err))
		return SoilCardFallback()
	}
	return sh
}
