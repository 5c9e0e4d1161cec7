package validation

import (
	"context"
	"strings"
	"sync"

	"github.com/opentracing/opentracing-go"

	"github.com/DhanushPillay/MailSpectre/interfaces"
	mserrors "github.com/DhanushPillay/MailSpectre/internal/errors"
	"github.com/DhanushPillay/MailSpectre/internal/logger"
	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
	"github.com/DhanushPillay/MailSpectre/internal/repository"
	"github.com/DhanushPillay/MailSpectre/internal/tracing"
	"github.com/DhanushPillay/MailSpectre/internal/utils"
)

const (
	// MaxBatchSize caps one batch request, bounding the fan-out of external
	// DNS and breach lookups.
	MaxBatchSize = 50

	// batchConcurrency bounds how many validations run at once in a batch.
	batchConcurrency = 8
)

type validationService struct {
	log          logger.Logger
	refStore     *refdata.Store
	dnsResolver  interfaces.DNSResolver
	breachClient interfaces.BreachClient
	records      repository.ValidationRecordRepository
}

// NewValidationService wires the check pipeline. records may be nil, in
// which case validation history is not persisted.
func NewValidationService(
	log logger.Logger,
	refStore *refdata.Store,
	dnsResolver interfaces.DNSResolver,
	breachClient interfaces.BreachClient,
	records repository.ValidationRecordRepository,
) interfaces.ValidationService {
	return &validationService{
		log:          log,
		refStore:     refStore,
		dnsResolver:  dnsResolver,
		breachClient: breachClient,
		records:      records,
	}
}

func (s *validationService) Validate(ctx context.Context, email string) (*models.ValidationResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "validationService.Validate")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	originalLocal, _ := utils.SplitEmail(strings.TrimSpace(email))
	normalized := utils.NormalizeEmail(email)
	if normalized == "" {
		return nil, mserrors.ErrEmailMissing
	}
	tracing.TagEmail(span, normalized)

	// One snapshot for the whole run; a concurrent reload cannot produce a
	// result mixing old and new reference data.
	ref := s.refStore.Current()
	local, domain := utils.SplitEmail(normalized)

	checks := []models.CheckResult{
		checkFormat(normalized),
		classifyEmail(local, domain, ref),
		checkTypo(local, domain, ref),
		s.checkDomainExists(ctx, domain),
		s.checkMXRecords(ctx, domain),
		checkDisposable(domain, ref),
		checkSuspiciousTLD(domain, ref),
		checkUsername(originalLocal, ref),
		s.checkDataBreach(ctx, normalized),
		checkFraudDatabase(normalized, domain, ref),
	}

	score, valid, summary := aggregate(checks)

	result := &models.ValidationResult{
		Email:   normalized,
		Valid:   valid,
		Score:   score,
		Summary: summary,
		Checks:  checks,
	}

	s.persist(ctx, result)

	return result, nil
}

func (s *validationService) ValidateBatch(ctx context.Context, emails []string) ([]models.ValidationResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "validationService.ValidateBatch")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.LogKV("batch_size", len(emails))

	if len(emails) == 0 {
		return nil, mserrors.ErrEmailsMissing
	}
	if len(emails) > MaxBatchSize {
		return nil, mserrors.ErrBatchTooLarge
	}

	// Validations are independent: reference data is read-only and results
	// land in distinct slots, so no locking is needed.
	results := make([]models.ValidationResult, len(emails))
	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for i, email := range emails {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				results[i] = invalidInputResult(email, "validation cancelled")
				return
			}

			result, err := s.Validate(ctx, email)
			if err != nil {
				results[i] = invalidInputResult(email, "Invalid input: Email must be a non-empty string")
				return
			}
			results[i] = *result
		}(i, email)
	}
	wg.Wait()

	return results, nil
}

func invalidInputResult(email, summary string) models.ValidationResult {
	return models.ValidationResult{
		Email:   email,
		Valid:   false,
		Score:   0,
		Summary: summary,
		Checks:  []models.CheckResult{},
	}
}

// persist is best effort: history must never fail a validation.
func (s *validationService) persist(ctx context.Context, result *models.ValidationResult) {
	if s.records == nil {
		return
	}

	record := &models.ValidationRecord{
		Email:   result.Email,
		Valid:   result.Valid,
		Score:   result.Score,
		Summary: result.Summary,
		Checks:  result.Checks,
	}
	if typeCheck := result.CheckByName(models.CheckEmailType); typeCheck != nil {
		record.EmailType = typeCheck.EmailType.String()
	}

	if err := s.records.Create(ctx, record); err != nil {
		s.log.Warnf("failed to persist validation record for %s: %v", result.Email, err)
	}
}
