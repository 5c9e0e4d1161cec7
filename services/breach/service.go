package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/DhanushPillay/MailSpectre/interfaces"
	"github.com/DhanushPillay/MailSpectre/internal/tracing"
)

type Config struct {
	BaseURL        string `env:"BREACH_API_URL" envDefault:"https://api.pwnedpasswords.com/range"`
	TimeoutSeconds int    `env:"BREACH_API_TIMEOUT_SECONDS" envDefault:"10"`
}

type breachService struct {
	cfg    *Config
	client *http.Client
}

func NewBreachService(cfg *Config) interfaces.BreachClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &breachService{
		cfg: cfg,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// LookupBreaches queries the breach index with a k-anonymity range request:
// only the first five characters of the SHA-1 digest leave the process, and
// the full digest is matched against the returned suffixes locally.
func (s *breachService) LookupBreaches(ctx context.Context, email string) (int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "breachService.LookupBreaches")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	digest := fmt.Sprintf("%X", sha1.Sum([]byte(email)))
	prefix, suffix := digest[:5], digest[5:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/"+prefix, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Add-Padding", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, errors.Wrap(err, "breach lookup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := errors.Errorf("breach lookup returned status %d", resp.StatusCode)
		tracing.TraceErr(span, err)
		return 0, err
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, found := strings.CutPrefix(line, suffix+":")
		if !found {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			continue
		}
		span.LogKV("breach_count", count)
		return count, nil
	}
	if err := scanner.Err(); err != nil {
		tracing.TraceErr(span, err)
		return 0, errors.Wrap(err, "failed to read breach response")
	}

	return 0, nil
}
