package refdata

import (
	"bufio"
	"os"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	mserrors "github.com/DhanushPillay/MailSpectre/internal/errors"
)

type Config struct {
	DisposableDomainsFile string `env:"REFDATA_DISPOSABLE_FILE"`
	FraudEmailsFile       string `env:"REFDATA_FRAUD_FILE"`
}

// Snapshot holds every reference dataset used by the validation checks.
// It is immutable after Load; concurrent validations share one snapshot
// and a reload swaps the whole snapshot through Store, never mutates it.
type Snapshot struct {
	disposableDomains map[string]struct{}
	suspiciousTLDs    map[string]struct{}
	eduSuffixes       []string
	workKeywords      []string
	personalProviders map[string]struct{}
	typoCorrections   map[string]string
	fraudKeywords     []string
	fraudEmails       map[string]struct{}
	verifiedCompanies map[string]string
}

// Load builds a snapshot from the compiled-in defaults plus any configured
// file overrides. A configured file that cannot be read is a startup error.
func Load(cfg *Config) (*Snapshot, error) {
	s := &Snapshot{
		disposableDomains: toSet(defaultDisposableDomains),
		suspiciousTLDs:    toSet(defaultSuspiciousTLDs),
		eduSuffixes:       defaultEduSuffixes,
		workKeywords:      defaultWorkKeywords,
		personalProviders: toSet(defaultPersonalProviders),
		typoCorrections:   defaultTypoCorrections,
		fraudKeywords:     defaultFraudKeywords,
		fraudEmails:       toSet(defaultFraudEmails),
		verifiedCompanies: defaultVerifiedCompanies,
	}

	if cfg != nil && cfg.DisposableDomainsFile != "" {
		if err := mergeLines(cfg.DisposableDomainsFile, s.disposableDomains); err != nil {
			return nil, errors.Wrap(mserrors.ErrReferenceDataLoad, err.Error())
		}
	}
	if cfg != nil && cfg.FraudEmailsFile != "" {
		if err := mergeLines(cfg.FraudEmailsFile, s.fraudEmails); err != nil {
			return nil, errors.Wrap(mserrors.ErrReferenceDataLoad, err.Error())
		}
	}

	return s, nil
}

func (s *Snapshot) IsDisposable(domain string) bool {
	_, ok := s.disposableDomains[domain]
	return ok
}

func (s *Snapshot) IsSuspiciousTLD(tld string) bool {
	_, ok := s.suspiciousTLDs[tld]
	return ok
}

func (s *Snapshot) IsEduDomain(domain string) bool {
	for _, suffix := range s.eduSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return true
		}
	}
	return false
}

func (s *Snapshot) MatchesWorkKeyword(local string) bool {
	for _, kw := range s.workKeywords {
		if local == kw || strings.HasPrefix(local, kw) {
			return true
		}
	}
	return false
}

func (s *Snapshot) IsPersonalProvider(domain string) bool {
	_, ok := s.personalProviders[domain]
	return ok
}

// TypoSuggestion returns the canonical domain for a known misspelling.
func (s *Snapshot) TypoSuggestion(domain string) (string, bool) {
	canonical, ok := s.typoCorrections[domain]
	return canonical, ok
}

func (s *Snapshot) FraudKeywords() []string {
	return s.fraudKeywords
}

func (s *Snapshot) IsFraudEmail(email string) bool {
	_, ok := s.fraudEmails[email]
	return ok
}

// CompanyForDomain returns the display name of a verified company domain.
func (s *Snapshot) CompanyForDomain(domain string) (string, bool) {
	company, ok := s.verifiedCompanies[domain]
	return company, ok
}

func (s *Snapshot) FraudEmailCount() int {
	return len(s.fraudEmails)
}

func (s *Snapshot) DisposableDomainCount() int {
	return len(s.disposableDomains)
}

// Store publishes the active snapshot. Reads are lock-free; a reload
// replaces the pointer atomically so in-flight validations keep the
// snapshot they started with.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore(s *Snapshot) *Store {
	store := &Store{}
	store.current.Store(s)
	return store
}

func (st *Store) Current() *Snapshot {
	return st.current.Load()
}

func (st *Store) Swap(s *Snapshot) {
	st.current.Store(s)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

// mergeLines adds non-empty, non-comment lines of a newline-delimited file.
func mergeLines(path string, into map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		into[line] = struct{}{}
	}
	return scanner.Err()
}
