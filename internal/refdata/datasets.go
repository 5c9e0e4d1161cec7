package refdata

// Compiled-in reference datasets. File overrides (see Load) extend the
// disposable and fraud sets; everything else ships with the binary.

var defaultDisposableDomains = []string{
	"tempmail.com", "guerrillamail.com", "10minutemail.com", "mailinator.com",
	"throwaway.email", "temp-mail.org", "fakeinbox.com", "maildrop.cc",
	"getnada.com", "trashmail.com", "yopmail.com", "sharklasers.com",
	"guerrillamailblock.com", "grr.la", "mintemail.com", "tempmail.net",
	"dispostable.com", "mailnesia.com", "spambox.us", "mohmal.com",
	"tempmail.org", "throwawaymail.com", "temp-mail.io", "mytemp.email",
	"tempinbox.com", "discard.email", "mailcatch.com", "spamgourmet.com",
	"guerrillamail.net", "guerrillamail.org", "mailsac.com", "spam4.me",
	"0-mail.com", "33mail.com", "anonbox.net", "bugmenot.com",
	"deadaddress.com", "dodgit.com", "emailsensei.com", "jetable.org",
	"mail-temporaire.fr", "mailexpire.com", "mailnull.com", "meltmail.com",
	"mytrashmail.com", "neverbox.com", "nospammail.net", "opayq.com",
	"rcpt.at", "selfdestructingmail.com", "sneakemail.com", "sogetthis.com",
	"spamavert.com", "spamfree24.org", "spamhole.com", "spaml.com",
	"tempemail.net", "tempomail.fr", "tradermail.info", "trash-mail.com",
	"trashmail.net", "wegwerfmail.de", "wh4f.org", "zoemail.org",
}

var defaultSuspiciousTLDs = []string{
	"xyz", "top", "click", "loan", "win", "vip", "bid", "date",
	"download", "stream", "racing", "review", "faith", "accountant",
	"science", "work", "party", "gq", "ml", "cf", "tk", "ga", "pw",
}

// Institutional suffixes matched against the end of the domain.
var defaultEduSuffixes = []string{
	".edu", ".edu.au", ".edu.in", ".edu.cn", ".edu.sg", ".edu.my",
	".edu.pk", ".edu.bd", ".edu.mx", ".edu.br", ".edu.co", ".edu.ph",
	".ac.uk", ".ac.in", ".ac.jp", ".ac.nz", ".ac.za", ".ac.kr", ".ac.th",
}

// Role-style local parts that lean corporate. Matched on equality or prefix.
var defaultWorkKeywords = []string{
	"info", "support", "admin", "sales", "contact", "help", "billing",
	"hr", "careers", "jobs", "office", "team", "hello", "enquiries",
	"marketing", "finance", "legal", "accounts", "noreply", "no-reply",
}

var defaultPersonalProviders = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "aol.com",
	"protonmail.com", "proton.me", "icloud.com", "mail.com", "yandex.com",
	"zoho.com", "gmx.com", "live.com", "msn.com", "me.com",
}

// Common misspellings of major providers.
var defaultTypoCorrections = map[string]string{
	"gmial.com":    "gmail.com",
	"gmal.com":     "gmail.com",
	"gmai.com":     "gmail.com",
	"gmaill.com":   "gmail.com",
	"gmail.co":     "gmail.com",
	"gmail.cm":     "gmail.com",
	"yahooo.com":   "yahoo.com",
	"yaho.com":     "yahoo.com",
	"yahoo.co":     "yahoo.com",
	"hotmial.com":  "hotmail.com",
	"hotmai.com":   "hotmail.com",
	"hotmail.co":   "hotmail.com",
	"outlok.com":   "outlook.com",
	"outloook.com": "outlook.com",
	"outlook.co":   "outlook.com",
	"iclod.com":    "icloud.com",
	"icloud.co":    "icloud.com",
	"protonmial.com": "protonmail.com",
}

// Substrings in the local part associated with advance-fee fraud.
var defaultFraudKeywords = []string{
	"prince", "barr", "mallam", "dr_", "mrs_", "pastor", "lottery",
	"winner", "inheritance", "beneficiary", "diplomat", "claims",
}

// Seed entries for the fraud email set; deployments extend this from a file.
var defaultFraudEmails = []string{
	"prince.abubakar419@gmail.com",
	"barrister.johnson@lawyer-intl.xyz",
	"mrs_sarah.inheritance@hotmail.com",
	"lottery.claims2024@yahoo.com",
	"dr_mallam.transfer@mail.ru",
	"pastor.blessing001@outlook.com",
}

var defaultVerifiedCompanies = map[string]string{
	"boeing.com":     "Boeing",
	"apple.com":      "Apple",
	"google.com":     "Google",
	"microsoft.com":  "Microsoft",
	"amazon.com":     "Amazon",
	"meta.com":       "Meta",
	"tesla.com":      "Tesla",
	"netflix.com":    "Netflix",
	"ibm.com":        "IBM",
	"intel.com":      "Intel",
	"oracle.com":     "Oracle",
	"salesforce.com": "Salesforce",
	"airbus.com":     "Airbus",
	"siemens.com":    "Siemens",
	"nike.com":       "Nike",
	"jpmorgan.com":   "JPMorgan Chase",
	"goldmansachs.com": "Goldman Sachs",
}
