package summarize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

// Summarizer produces the narrative summary and structured key details.
// All extraction is read-only and best-effort: a field that cannot be
// found is simply absent from the result.
type Summarizer struct{}

func New() *Summarizer {
	return &Summarizer{}
}

func (s *Summarizer) Summarize(text string, cls domain.Classification, meta domain.DocumentMetadata) (domain.Summarization, error) {
	switch {
	case cls.DocumentType == "OSB_Form_31":
		return proofOfClaimSummary(text, cls, meta), nil
	case cls.Category == domain.CategoryOSBForm:
		return osbFormSummary(text, cls, meta), nil
	case cls.DocumentType == "bank_statement" || cls.DocumentType == "credit_card_statement":
		return bankStatementSummary(text, cls), nil
	default:
		return genericSummary(text, cls), nil
	}
}

func proofOfClaimSummary(text string, cls domain.Classification, meta domain.DocumentMetadata) domain.Summarization {
	creditor := extractEntity(text, "creditor")
	debtor := extractEntity(text, "debtor")
	if debtor == "" {
		debtor = meta.ClientName
	}
	filingDate := extractDate(text, "dated")
	amount := extractAmount(text, "amount of claim")

	var b strings.Builder
	b.WriteString("Proof of Claim (Form 31)")
	if creditor != "" {
		b.WriteString(" filed by " + creditor)
	}
	if debtor != "" {
		b.WriteString(" against the estate of " + debtor)
	}
	if amount != "" {
		b.WriteString(" claiming " + amount)
	}
	if filingDate != "" {
		b.WriteString(", dated " + filingDate)
	}
	b.WriteString(". The claim must be verified before the creditor may vote or share in any distribution.")

	details := domain.KeyDetails{
		DocumentType: cls.DocumentType,
		Parties:      appendNonEmpty(nil, creditor, debtor),
		LegalImplications: []string{
			"Filing a proof of claim entitles the creditor to vote at creditor meetings and share in dividends",
			"A claim may be disallowed in whole or in part by the trustee",
		},
		NextSteps: []string{
			"Verify the claim amount against the estate records",
			"Admit or disallow the claim and notify the creditor of the determination",
		},
	}
	if filingDate != "" {
		details.Dates = map[string]string{"filing_date": filingDate}
	}
	if amount != "" {
		details.FinancialSnapshot = &domain.FinancialSnapshot{
			TotalAmount: amount,
			Currency:    "CAD",
			Breakdown:   map[string]string{"claim_amount": amount},
		}
	}
	return domain.Summarization{Summary: b.String(), KeyDetails: details}
}

// formNarratives describe the legal effect and procedural next steps of
// the OSB forms with dedicated summaries. Anything else falls through
// to a title-based narrative.
var formNarratives = map[string]struct {
	effect       string
	implications []string
	nextSteps    []string
}{
	"47": {
		effect: "proposes a binding arrangement between the consumer debtor and their unsecured creditors under Division II of the BIA",
		implications: []string{
			"Filing stays most enforcement proceedings against the debtor",
			"If accepted and completed, the proposal discharges the included debts",
		},
		nextSteps: []string{
			"File the proposal with the official receiver",
			"Notify creditors and schedule the meeting of creditors if one is requested",
		},
	},
	"65": {
		effect: "reports the debtor's monthly household income and expenses for surplus income assessment",
		implications: []string{
			"Surplus income above the superintendent's standard increases required payments",
		},
		nextSteps: []string{
			"Verify reported income against pay statements",
			"Recalculate the surplus income obligation for the period",
		},
	},
	"76": {
		effect: "delivers the trustee's report on the proposal ahead of the creditors' decision",
		implications: []string{
			"Creditors rely on the trustee's opinion when voting on the proposal",
		},
		nextSteps: []string{
			"Distribute the report to creditors with the notice of meeting",
		},
	},
	"79": {
		effect: "discloses the debtor's complete assets, liabilities and creditors under oath",
		implications: []string{
			"False or incomplete disclosure is an offence under the BIA",
		},
		nextSteps: []string{
			"Reconcile disclosed liabilities against filed claims",
			"Review asset valuations for realization planning",
		},
	},
}

func osbFormSummary(text string, cls domain.Classification, meta domain.DocumentMetadata) domain.Summarization {
	debtor := extractEntity(text, "debtor")
	if debtor == "" {
		debtor = meta.ClientName
	}
	trustee := extractEntity(text, "trustee")
	if trustee == "" {
		trustee = extractEntity(text, "administrator")
	}
	filingDate := extractDate(text, "date of filing")

	title := cls.FormTitle
	if title == "" {
		title = "OSB regulatory form"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (Form %s)", title, cls.FormNumber)
	if debtor != "" {
		b.WriteString(" for " + debtor)
	}
	narrative, known := formNarratives[cls.FormNumber]
	if known {
		b.WriteString(" " + narrative.effect)
	} else {
		b.WriteString(" filed in an insolvency proceeding")
	}
	if filingDate != "" {
		b.WriteString(", dated " + filingDate)
	}
	b.WriteString(".")

	details := domain.KeyDetails{
		DocumentType: cls.DocumentType,
		Parties:      appendNonEmpty(nil, debtor, trustee),
	}
	if filingDate != "" {
		details.Dates = map[string]string{"filing_date": filingDate}
	}
	if known {
		details.LegalImplications = narrative.implications
		details.NextSteps = narrative.nextSteps
	}
	return domain.Summarization{Summary: b.String(), KeyDetails: details}
}

var knownInstitutions = []string{
	"Royal Bank of Canada", "RBC", "TD Canada Trust", "Scotiabank",
	"Bank of Montreal", "BMO", "CIBC", "National Bank", "Desjardins",
	"Tangerine", "Simplii",
}

var accountNumberRe = regexp.MustCompile(`(?i)account\s*(?:no\.?|number|#)\s*[:\-]?\s*(\d[\d\s-]{2,18}\d)`)

func bankStatementSummary(text string, cls domain.Classification) domain.Summarization {
	holder := extractEntity(text, "account_holder")
	institution := detectInstitution(text)
	suffix := maskedAccountSuffix(text)
	periodFrom, periodTo := extractDateRange(text)

	opening := extractAmount(text, "opening balance")
	closing := extractAmount(text, "closing balance")
	deposits := extractAmount(text, "total deposits")
	withdrawals := extractAmount(text, "total withdrawals")

	var b strings.Builder
	if institution != "" {
		b.WriteString(institution + " bank statement")
	} else {
		b.WriteString("Bank statement")
	}
	if holder != "" {
		b.WriteString(" for " + holder)
	}
	if suffix != "" {
		b.WriteString(" (account " + suffix + ")")
	}
	if periodFrom != "" {
		fmt.Fprintf(&b, " covering %s to %s", periodFrom, periodTo)
	}
	b.WriteString(".")
	if opening != "" {
		b.WriteString(" Opening balance " + opening)
		if closing != "" {
			b.WriteString(", closing balance " + closing)
		}
		b.WriteString(".")
	} else if closing != "" {
		b.WriteString(" Closing balance " + closing + ".")
	}
	if deposits != "" || withdrawals != "" {
		b.WriteString(" Activity:")
		if deposits != "" {
			b.WriteString(" deposits " + deposits)
		}
		if withdrawals != "" {
			if deposits != "" {
				b.WriteString(",")
			}
			b.WriteString(" withdrawals " + withdrawals)
		}
		b.WriteString(".")
	}

	breakdown := map[string]string{}
	putNonEmpty(breakdown, "opening_balance", opening)
	putNonEmpty(breakdown, "closing_balance", closing)
	putNonEmpty(breakdown, "total_deposits", deposits)
	putNonEmpty(breakdown, "total_withdrawals", withdrawals)

	details := domain.KeyDetails{
		DocumentType: cls.DocumentType,
		Parties:      appendNonEmpty(nil, holder, institution),
	}
	if periodFrom != "" {
		details.Dates = map[string]string{
			"period_start": periodFrom,
			"period_end":   periodTo,
		}
	}
	if len(breakdown) > 0 {
		details.FinancialSnapshot = &domain.FinancialSnapshot{
			TotalAmount: closing,
			Currency:    "CAD",
			Breakdown:   breakdown,
		}
	}
	return domain.Summarization{Summary: b.String(), KeyDetails: details}
}

func genericSummary(text string, cls domain.Classification) domain.Summarization {
	var label string
	switch cls.Category {
	case domain.CategoryFinancial:
		label = "Financial document"
	case domain.CategoryCreditor:
		label = "Creditor document"
	case domain.CategoryIdentity:
		label = "Identity document"
	case domain.CategoryLegal:
		label = "Legal document"
	case domain.CategoryCorrespondence:
		label = "Correspondence"
	default:
		label = "Unclassified document"
	}

	date := extractDate(text, "date")
	amount := extractAmount(text, "total")

	var b strings.Builder
	b.WriteString(label)
	if cls.DocumentType != "" && cls.DocumentType != "unknown" {
		fmt.Fprintf(&b, " (%s)", strings.ReplaceAll(cls.DocumentType, "_", " "))
	}
	if date != "" {
		b.WriteString(" dated " + date)
	}
	b.WriteString(".")
	if amount != "" {
		b.WriteString(" References an amount of " + amount + ".")
	}

	details := domain.KeyDetails{DocumentType: cls.DocumentType}
	if date != "" {
		details.Dates = map[string]string{"document_date": date}
	}
	if amount != "" {
		details.FinancialSnapshot = &domain.FinancialSnapshot{
			TotalAmount: amount,
			Currency:    "CAD",
			Breakdown:   map[string]string{"total": amount},
		}
	}
	return domain.Summarization{Summary: b.String(), KeyDetails: details}
}

func detectInstitution(text string) string {
	lower := strings.ToLower(text)
	for _, name := range knownInstitutions {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}

// maskedAccountSuffix finds an account number and keeps only its last
// four digits.
func maskedAccountSuffix(text string) string {
	match := accountNumberRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, match[1])
	if len(digits) < 4 {
		return ""
	}
	return "****" + digits[len(digits)-4:]
}

func appendNonEmpty(parties []string, names ...string) []string {
	for _, name := range names {
		if name != "" {
			parties = append(parties, name)
		}
	}
	return parties
}

func putNonEmpty(m map[string]string, key, value string) {
	if value != "" {
		m[key] = value
	}
}
