package validation

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhanushPillay/MailSpectre/interfaces"
	"github.com/DhanushPillay/MailSpectre/internal/enum"
	mserrors "github.com/DhanushPillay/MailSpectre/internal/errors"
	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
)

type stubResolver struct {
	ips   []net.IP
	mx    []*net.MX
	aErr  error
	mxErr error
}

func (r *stubResolver) LookupA(ctx context.Context, domain string) ([]net.IP, error) {
	return r.ips, r.aErr
}

func (r *stubResolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return r.mx, r.mxErr
}

type stubBreachClient struct {
	count int
	err   error
}

func (b *stubBreachClient) LookupBreaches(ctx context.Context, email string) (int, error) {
	return b.count, b.err
}

type stubRecordsRepo struct {
	mu      sync.Mutex
	created []*models.ValidationRecord
	err     error
}

func (r *stubRecordsRepo) Create(ctx context.Context, record *models.ValidationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, record)
	return nil
}

func (r *stubRecordsRepo) GetByID(ctx context.Context, id string) (*models.ValidationRecord, error) {
	return nil, nil
}

func (r *stubRecordsRepo) ListRecent(ctx context.Context, limit int) ([]models.ValidationRecord, error) {
	return nil, nil
}

func (r *stubRecordsRepo) ListByEmail(ctx context.Context, email string, limit int) ([]models.ValidationRecord, error) {
	return nil, nil
}

func (r *stubRecordsRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func healthyResolver() *stubResolver {
	return &stubResolver{
		ips: []net.IP{net.ParseIP("93.184.216.34")},
		mx:  []*net.MX{{Host: "mx1.example.com.", Pref: 10}},
	}
}

func newTestService(t *testing.T, resolver interfaces.DNSResolver, breach interfaces.BreachClient, records *stubRecordsRepo) interfaces.ValidationService {
	t.Helper()
	store := refdata.NewStore(defaultSnapshot(t))
	if records == nil {
		return NewValidationService(getLogger(), store, resolver, breach, nil)
	}
	return NewValidationService(getLogger(), store, resolver, breach, records)
}

func TestValidate_AllChecksPass(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	result, err := svc.Validate(context.Background(), "info@boeing.com")
	require.NoError(t, err)

	assert.Equal(t, "info@boeing.com", result.Email)
	assert.True(t, result.Valid)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, "Email passed all validation checks", result.Summary)

	require.Len(t, result.Checks, len(models.AllChecks))
	for i, check := range result.Checks {
		assert.Equal(t, models.AllChecks[i], check.Check)
		assert.True(t, check.Valid, "check %s", check.Check)
	}

	typeCheck := result.CheckByName(models.CheckEmailType)
	require.NotNil(t, typeCheck)
	assert.Equal(t, enum.EmailTypeWork, typeCheck.EmailType)
	assert.Equal(t, "Boeing", typeCheck.Company)
}

func TestValidate_NormalizesAndIsDeterministic(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	first, err := svc.Validate(context.Background(), "  INFO@Boeing.COM  ")
	require.NoError(t, err)
	second, err := svc.Validate(context.Background(), "info@boeing.com")
	require.NoError(t, err)

	assert.Equal(t, "info@boeing.com", first.Email)
	assert.Equal(t, first, second)
}

func TestValidate_EmptyEmail(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	for _, email := range []string{"", "   "} {
		result, err := svc.Validate(context.Background(), email)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, mserrors.ErrEmailMissing)
	}
}

func TestValidate_DNSFailureFailsClosed(t *testing.T) {
	resolver := &stubResolver{
		aErr:  errors.New("no such host"),
		mxErr: errors.New("no such host"),
	}
	svc := newTestService(t, resolver, &stubBreachClient{}, nil)

	result, err := svc.Validate(context.Background(), "info@boeing.com")
	require.NoError(t, err)

	domainCheck := result.CheckByName(models.CheckDomainExists)
	require.NotNil(t, domainCheck)
	assert.False(t, domainCheck.Valid)

	mxCheck := result.CheckByName(models.CheckMXRecords)
	require.NotNil(t, mxCheck)
	assert.False(t, mxCheck.Valid)

	// domain_exists is critical, so the score is capped
	assert.Equal(t, 40.0, result.Score)
	assert.False(t, result.Valid)
}

func TestValidate_BreachLookupFailsOpen(t *testing.T) {
	breach := &stubBreachClient{err: errors.New("service unavailable")}
	svc := newTestService(t, healthyResolver(), breach, nil)

	result, err := svc.Validate(context.Background(), "info@boeing.com")
	require.NoError(t, err)

	breachCheck := result.CheckByName(models.CheckDataBreach)
	require.NotNil(t, breachCheck)
	assert.True(t, breachCheck.Valid)
	assert.Nil(t, breachCheck.BreachCount)
	assert.Equal(t, "Breach status unknown", breachCheck.Message)

	assert.True(t, result.Valid)
	assert.Equal(t, 100.0, result.Score)
}

func TestValidate_BreachedAddress(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{count: 7}, nil)

	result, err := svc.Validate(context.Background(), "info@boeing.com")
	require.NoError(t, err)

	breachCheck := result.CheckByName(models.CheckDataBreach)
	require.NotNil(t, breachCheck)
	assert.False(t, breachCheck.Valid)
	require.NotNil(t, breachCheck.BreachCount)
	assert.Equal(t, 7, *breachCheck.BreachCount)

	// a breach alone is not critical
	assert.Equal(t, 90.0, result.Score)
	assert.True(t, result.Valid)
}

func TestValidate_DisposableAddress(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	result, err := svc.Validate(context.Background(), "user@10minutemail.com")
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 40.0, result.Score)

	disposableCheck := result.CheckByName(models.CheckDisposable)
	require.NotNil(t, disposableCheck)
	assert.False(t, disposableCheck.Valid)

	typeCheck := result.CheckByName(models.CheckEmailType)
	require.NotNil(t, typeCheck)
	assert.Equal(t, enum.EmailTypeTemporary, typeCheck.EmailType)
}

func TestValidate_FraudulentAddress(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	result, err := svc.Validate(context.Background(), "prince.abubakar419@gmail.com")
	require.NoError(t, err)

	fraudCheck := result.CheckByName(models.CheckFraudDatabase)
	require.NotNil(t, fraudCheck)
	assert.False(t, fraudCheck.Valid)

	usernameCheck := result.CheckByName(models.CheckUsername)
	require.NotNil(t, usernameCheck)
	assert.False(t, usernameCheck.Valid)

	assert.False(t, result.Valid)
	assert.Equal(t, 40.0, result.Score)
}

func TestValidate_PersistsHistory(t *testing.T) {
	records := &stubRecordsRepo{}
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, records)

	_, err := svc.Validate(context.Background(), "info@boeing.com")
	require.NoError(t, err)

	require.Len(t, records.created, 1)
	record := records.created[0]
	assert.Equal(t, "info@boeing.com", record.Email)
	assert.True(t, record.Valid)
	assert.Equal(t, 100.0, record.Score)
	assert.Equal(t, "work", record.EmailType)
	assert.Len(t, record.Checks, len(models.AllChecks))
}

func TestValidate_PersistenceFailureIsNotFatal(t *testing.T) {
	records := &stubRecordsRepo{err: errors.New("db down")}
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, records)

	result, err := svc.Validate(context.Background(), "info@boeing.com")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateBatch_InputErrors(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	t.Run("empty list", func(t *testing.T) {
		results, err := svc.ValidateBatch(context.Background(), nil)
		assert.Nil(t, results)
		assert.ErrorIs(t, err, mserrors.ErrEmailsMissing)
	})

	t.Run("over the batch limit", func(t *testing.T) {
		emails := make([]string, MaxBatchSize+1)
		for i := range emails {
			emails[i] = "user@example.com"
		}

		results, err := svc.ValidateBatch(context.Background(), emails)
		assert.Nil(t, results)
		assert.ErrorIs(t, err, mserrors.ErrBatchTooLarge)
	})

	t.Run("exactly the batch limit is accepted", func(t *testing.T) {
		emails := make([]string, MaxBatchSize)
		for i := range emails {
			emails[i] = "user@example.com"
		}

		results, err := svc.ValidateBatch(context.Background(), emails)
		require.NoError(t, err)
		assert.Len(t, results, MaxBatchSize)
	})
}

func TestValidateBatch_PreservesOrder(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	emails := []string{
		"info@boeing.com",
		"user@10minutemail.com",
		"john.smith@gmail.com",
		"test@gmial.com",
	}

	results, err := svc.ValidateBatch(context.Background(), emails)
	require.NoError(t, err)
	require.Len(t, results, len(emails))

	for i, email := range emails {
		assert.Equal(t, email, results[i].Email)
	}
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
}

func TestValidateBatch_InvalidEntryKeepsItsSlot(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	results, err := svc.ValidateBatch(context.Background(), []string{
		"info@boeing.com",
		"",
		"john.smith@gmail.com",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.False(t, results[1].Valid)
	assert.Equal(t, 0.0, results[1].Score)
	assert.Equal(t, "Invalid input: Email must be a non-empty string", results[1].Summary)
	assert.Empty(t, results[1].Checks)

	assert.True(t, results[0].Valid)
	assert.True(t, results[2].Valid)
}

func TestValidateBatch_TypoSuggestionSurvivesBatch(t *testing.T) {
	svc := newTestService(t, healthyResolver(), &stubBreachClient{}, nil)

	results, err := svc.ValidateBatch(context.Background(), []string{"test@gmial.com"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	typoCheck := results[0].CheckByName(models.CheckTypo)
	require.NotNil(t, typoCheck)
	assert.False(t, typoCheck.Valid)
	assert.Equal(t, "test@gmail.com", typoCheck.Suggestion)
}
