package services

import (
	"time"

	"github.com/DhanushPillay/MailSpectre/config"
	"github.com/DhanushPillay/MailSpectre/interfaces"
	"github.com/DhanushPillay/MailSpectre/internal/logger"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
	"github.com/DhanushPillay/MailSpectre/internal/repository"
	"github.com/DhanushPillay/MailSpectre/services/breach"
	"github.com/DhanushPillay/MailSpectre/services/dns"
	"github.com/DhanushPillay/MailSpectre/services/validation"
)

type Services struct {
	DNSResolver       interfaces.DNSResolver
	BreachClient      interfaces.BreachClient
	ValidationService interfaces.ValidationService
}

// InitServices wires the check pipeline. repos may be nil when history
// persistence is disabled.
func InitServices(cfg *config.Config, log logger.Logger, refStore *refdata.Store, repos *repository.Repositories) *Services {
	dnsResolver := dns.NewDNSService(time.Duration(cfg.AppConfig.DNSTimeoutSeconds) * time.Second)
	breachClient := breach.NewBreachService(cfg.BreachConfig)

	var records repository.ValidationRecordRepository
	if repos != nil {
		records = repos.ValidationRecordRepository
	}

	return &Services{
		DNSResolver:       dnsResolver,
		BreachClient:      breachClient,
		ValidationService: validation.NewValidationService(log, refStore, dnsResolver, breachClient, records),
	}
}
