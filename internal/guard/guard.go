// Package guard implements the decision policy on top of the detection
// pipeline. Guard may refuse to answer; Scrub always returns a sanitized
// copy of the input.
package guard

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/piigate/piigate/internal/detectors"
	"github.com/piigate/piigate/internal/llmdetect"
	"github.com/piigate/piigate/internal/mask"
	"github.com/piigate/piigate/internal/reconcile"
	"github.com/piigate/piigate/internal/score"
	"github.com/piigate/piigate/internal/types"
	"github.com/piigate/piigate/internal/whitelist"
)

// RefusalMessage is returned verbatim whenever a request is blocked.
const RefusalMessage = "죄송합니다. 개인정보가 포함된 내용으로 인해 응답을 제공할 수 없습니다."

// GuardResult is the outcome of one Guard evaluation.
type GuardResult struct {
	Answer    string
	Score     int
	Blocked   bool
	Matches   []types.Match
	Injection *types.InjectionVerdict
}

// ScrubResult is the outcome of one Scrub pass.
type ScrubResult struct {
	Scrubbed string
	Matches  []types.Match
}

// errorCounter is satisfied by prometheus.Counter; the service only needs to
// bump it when an external call fails.
type errorCounter interface {
	Inc()
}

// Service runs the detection pipeline and applies the block policy.
// External is nil when the semantic detector is disabled; the pattern
// pipeline carries the request alone in that case. ExternalErrs, when set,
// counts failed external detector calls.
type Service struct {
	Whitelist    *whitelist.Whitelist
	External     llmdetect.Detector
	ExternalErrs errorCounter
}

// New builds a Service. A nil whitelist suppresses nothing.
func New(wl *whitelist.Whitelist, external llmdetect.Detector) *Service {
	if wl == nil {
		wl = whitelist.Empty()
	}
	return &Service{Whitelist: wl, External: external}
}

// detect runs pattern extraction and, when available, the external detector
// in parallel, then reconciles all candidates into one non-overlapping set.
func (s *Service) detect(ctx context.Context, text string, wantInjection bool) ([]types.Match, *types.InjectionVerdict) {
	var (
		wg        sync.WaitGroup
		external  []types.Match
		injection *types.InjectionVerdict
	)

	if s.External != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ms, err := s.External.DetectPII(ctx, text)
			if err != nil {
				s.countExternalError()
				log.Warn().Err(err).Msg("external pii detection skipped")
				return
			}
			external = ms
		}()

		if wantInjection {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := s.External.DetectInjection(ctx, text)
				if err != nil {
					s.countExternalError()
					log.Warn().Err(err).Msg("injection analysis skipped")
					return
				}
				injection = &v
			}()
		}
	}

	pattern := detectors.Extract(text, s.Whitelist)
	wg.Wait()

	return reconcile.Reconcile(append(pattern, external...)), injection
}

func (s *Service) countExternalError() {
	if s.ExternalErrs != nil {
		s.ExternalErrs.Inc()
	}
}

// Guard evaluates text and either blocks it or returns a masked answer.
// A request is blocked when the risk score reaches score.BlockThreshold or
// the external detector reports a prompt injection attempt.
func (s *Service) Guard(ctx context.Context, text string) GuardResult {
	matches, injection := s.detect(ctx, text, true)
	sc := score.Score(matches)

	blocked := sc >= score.BlockThreshold
	if injection != nil && injection.Detected {
		blocked = true
	}

	res := GuardResult{
		Score:     sc,
		Blocked:   blocked,
		Matches:   matches,
		Injection: injection,
	}
	if blocked {
		res.Answer = RefusalMessage
	} else {
		res.Answer = mask.Apply(text, matches)
	}
	return res
}

// Scrub masks every detected value. It never blocks and ignores the score.
func (s *Service) Scrub(ctx context.Context, text string) ScrubResult {
	matches, _ := s.detect(ctx, text, false)
	return ScrubResult{
		Scrubbed: mask.Apply(text, matches),
		Matches:  matches,
	}
}
