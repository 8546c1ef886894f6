// Package scoring wires the extractor, tokenizer, matcher and aggregator
// into the ATS scoring pipeline, with a fail-open cache around the pure core.
package scoring

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/jonathan/ats-scorer/internal/match"
	"github.com/jonathan/ats-scorer/internal/score"
	"github.com/jonathan/ats-scorer/internal/textnorm"
	"github.com/jonathan/ats-scorer/internal/types"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultCacheTTL bounds how long a scored result stays cached.
	DefaultCacheTTL = 30 * time.Minute

	// fallbackName is the sentinel assigned when no name can be extracted.
	fallbackName = "Unknown Candidate"

	errMissingName  = "Missing name."
	errMissingEmail = "Missing email."
	errMissingPhone = "Missing phone."
)

// rawNamePattern is the last-chance lookup over the raw HTML when the
// extractor's selector chain found no name.
var rawNamePattern = regexp.MustCompile(`Name:\s*([A-Za-z\s-]+)`)

// Service orchestrates a scoring request. The pipeline underneath it is
// pure and stateless per request; the cache is the only I/O.
type Service struct {
	tokenizer *textnorm.Tokenizer
	matcher   *match.Matcher
	store     cache.Store
	cacheTTL  time.Duration
}

// New creates a scoring service. A nil store disables caching; a zero ttl
// selects DefaultCacheTTL.
func New(matcher *match.Matcher, tokenizer *textnorm.Tokenizer, store cache.Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		tokenizer: tokenizer,
		matcher:   matcher,
		store:     store,
		cacheTTL:  ttl,
	}
}

// Score runs the full pipeline for one resume/job-description pair.
// Identical inputs produce identical results; the cache only short-cuts
// recomputation and its failures are logged and swallowed.
func (s *Service) Score(ctx context.Context, htmlResume, jobDescription string) (*types.ATSResult, error) {
	key := CacheKey(htmlResume, jobDescription)

	if cached := s.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	resume := extract.Extract(htmlResume)
	name, formattingErrors := resolveContact(resume, htmlResume)
	resume.Name = name

	resumeText := strings.Join([]string{resume.ExperienceText, resume.EducationText, resume.SkillsText}, "\n")
	resumeTokens := s.tokenizer.Tokenize(resumeText)
	jobTokens := s.tokenizer.Tokenize(jobDescription)

	// The three matcher passes are independent over read-only state.
	var scores types.MatchScores
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		scores.KeywordMatch = s.matcher.MatchPercent(resumeTokens, jobTokens)
		return nil
	})
	g.Go(func() error {
		scores.SoftSkillsMatch = s.matcher.SoftSkillsPercent(resumeTokens)
		return nil
	})
	g.Go(func() error {
		scores.IndustryTermsMatch = s.matcher.IndustryTermsPercent(resumeTokens)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &types.ATSResult{
		ATSScore:           score.CalculateATSScore(scores.KeywordMatch, formattingErrors, scores.SoftSkillsMatch, scores.IndustryTermsMatch),
		KeywordMatch:       scores.KeywordMatch,
		SoftSkillsMatch:    scores.SoftSkillsMatch,
		IndustryTermsMatch: scores.IndustryTermsMatch,
		FormattingErrors:   formattingErrors,
	}

	s.cacheSet(ctx, key, result)
	return result, nil
}

// resolveContact applies the fallback name policy and builds the ordered
// formatting-defect list for missing contact fields.
func resolveContact(resume types.ParsedResume, htmlResume string) (string, []string) {
	formattingErrors := []string{}

	name := resume.Name
	if name == "" {
		if m := rawNamePattern.FindStringSubmatch(htmlResume); m != nil {
			name = strings.TrimSpace(m[1])
		}
	}
	if name == "" {
		name = fallbackName
	}
	if name == fallbackName {
		formattingErrors = append(formattingErrors, errMissingName)
	}
	if resume.Email == "" {
		formattingErrors = append(formattingErrors, errMissingEmail)
	}
	if resume.Phone == "" {
		formattingErrors = append(formattingErrors, errMissingPhone)
	}

	return name, formattingErrors
}

// CacheKey derives a stable, reversible key from the two inputs. A NUL
// separator keeps distinct input pairs from colliding at the boundary.
func CacheKey(htmlResume, jobDescription string) string {
	return base64.StdEncoding.EncodeToString([]byte(htmlResume + "\x00" + jobDescription))
}

// cacheGet returns a previously stored result, or nil on miss or any
// cache failure (fail-open).
func (s *Service) cacheGet(ctx context.Context, key string) *types.ATSResult {
	if s.store == nil {
		return nil
	}

	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		log.Printf("[cache] get failed, recomputing: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var result types.ATSResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Printf("[cache] corrupt entry, recomputing: %v", err)
		return nil
	}
	return &result
}

// cacheSet writes the result with a bounded TTL, swallowing failures.
func (s *Service) cacheSet(ctx context.Context, key string, result *types.ATSResult) {
	if s.store == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[cache] marshal failed: %v", err)
		return
	}
	if err := s.store.Set(ctx, key, data, s.cacheTTL); err != nil {
		log.Printf("[cache] set failed: %v", err)
	}
}
