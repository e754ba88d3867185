package risk

import "github.com/avelsher/estatedocs/internal/core/domain"

type ruleSet func(norm string) []domain.RiskIssue

func formRuleSet(formNumber string) ruleSet {
	switch formNumber {
	case "31":
		return form31Rules
	case "47":
		return form47Rules
	case "65":
		return form65Rules
	case "76":
		return form76Rules
	case "79":
		return form79Rules
	default:
		return genericFormRules
	}
}

var signatureMarkers = []string{"signature", "signed", "signing"}

// form31Rules covers the Proof of Claim.
func form31Rules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, signatureMarkers) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_DEBTOR_SIGNATURE",
			Description: "Debtor signature missing",
			Severity:    domain.SeverityCritical,
			Regulation:  "BIA Section 49(2)",
			Impact:      "The form cannot be accepted for filing without a signature",
			Solution:    "Obtain the debtor's signature before filing",
			Deadline:    "BEFORE_FILING",
		})
	}
	if !containsAny(norm, []string{"amount of claim", "$"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_CLAIM_AMOUNT",
			Description: "No claim amount stated on the proof of claim",
			Severity:    domain.SeverityHigh,
			Regulation:  "BIA Section 124",
			Impact:      "The claim cannot be valued for dividend purposes",
			Solution:    "State the amount of the claim and attach supporting documents",
		})
	}
	if !containsAny(norm, []string{"creditor"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_CREDITOR_NAME",
			Description: "Creditor is not identified",
			Severity:    domain.SeverityHigh,
			Regulation:  "BIA Section 124",
			Impact:      "The claim cannot be attributed to a creditor of record",
			Solution:    "Identify the creditor and their mailing address",
		})
	}
	if !containsAny(norm, []string{"security", "secured", "unsecured"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "INCOMPLETE_SECURITY_DECLARATION",
			Description: "Security declaration section appears incomplete",
			Severity:    domain.SeverityMedium,
			Regulation:  "BIA Section 127",
			Impact:      "Secured and unsecured portions of the claim cannot be distinguished",
			Solution:    "Complete the security declaration, marking the claim secured or unsecured",
		})
	}
	if !containsAny(norm, []string{"dated", "date"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_DATE",
			Description: "The form is not dated",
			Severity:    domain.SeverityMedium,
			Impact:      "Filing and limitation periods cannot be established",
			Solution:    "Date the form at signing",
		})
	}
	return issues
}

// form47Rules covers the Consumer Proposal.
func form47Rules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, []string{"administrator"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_ADMINISTRATOR_NAME",
			Description: "No administrator of the proposal is named",
			Severity:    domain.SeverityCritical,
			Regulation:  "BIA Section 66.13",
			Impact:      "A consumer proposal must be filed through a licensed administrator",
			Solution:    "Name the licensed insolvency trustee acting as administrator",
		})
	}
	if !containsAny(norm, signatureMarkers) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_DEBTOR_SIGNATURE",
			Description: "Debtor signature missing",
			Severity:    domain.SeverityCritical,
			Regulation:  "BIA Section 66.13(2)",
			Impact:      "An unsigned proposal cannot be filed with the official receiver",
			Solution:    "Obtain the debtor's signature before filing",
			Deadline:    "BEFORE_FILING",
		})
	}
	if !containsAny(norm, []string{"payment", "monthly", "instalment", "installment"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_PAYMENT_TERMS",
			Description: "The proposal states no payment terms",
			Severity:    domain.SeverityHigh,
			Regulation:  "BIA Section 66.12(5)",
			Impact:      "Creditors cannot evaluate the proposal without payment terms",
			Solution:    "Set out the payment schedule offered to creditors",
		})
	}
	if !containsAny(norm, []string{"creditor"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_CREDITOR_LIST",
			Description: "No creditors are identified in the proposal",
			Severity:    domain.SeverityHigh,
			Regulation:  "BIA Section 66.14",
			Impact:      "Notice of the proposal cannot be given to known creditors",
			Solution:    "Attach the list of creditors and amounts owed",
		})
	}
	if !containsAny(norm, []string{"secured"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "INCOMPLETE_CREDITOR_PROVISIONS",
			Description: "Treatment of secured creditors is not addressed",
			Severity:    domain.SeverityMedium,
			Regulation:  "BIA Section 66.12",
			Impact:      "Secured creditor rights may be unclear to all parties",
			Solution:    "State how secured claims are dealt with under the proposal",
		})
	}
	return issues
}

// form65Rules covers the Monthly Income and Expense Statement.
func form65Rules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, []string{"total income", "total monthly income"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_INCOME_TOTAL",
			Description: "Total monthly income is not stated",
			Severity:    domain.SeverityHigh,
			Regulation:  "OSB Directive 11R2",
			Impact:      "Surplus income obligations cannot be calculated",
			Solution:    "Complete the total income line including all household income",
		})
	}
	if !containsAny(norm, []string{"total expense", "total expenses", "total monthly expense"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_EXPENSE_TOTAL",
			Description: "Total monthly expenses are not stated",
			Severity:    domain.SeverityHigh,
			Regulation:  "OSB Directive 11R2",
			Impact:      "Available income cannot be verified against the standard",
			Solution:    "Complete the total expense line",
		})
	}
	if !containsAny(norm, []string{"surplus"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_SURPLUS_CALCULATION",
			Description: "No surplus income calculation is present",
			Severity:    domain.SeverityMedium,
			Regulation:  "BIA Section 68",
			Impact:      "Required surplus income payments may be understated",
			Solution:    "Calculate surplus income per the superintendent's standard",
		})
	}
	if !containsAny(norm, []string{"household", "family unit", "persons in the household"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "INCOMPLETE_HOUSEHOLD_INFO",
			Description: "Household size information is missing",
			Severity:    domain.SeverityLow,
			Regulation:  "OSB Directive 11R2",
			Impact:      "The applicable surplus income threshold cannot be selected",
			Solution:    "Record the number of persons in the household unit",
		})
	}
	return issues
}

// form76Rules covers the Report of Trustee on Proposal.
func form76Rules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, []string{"opinion"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_TRUSTEE_OPINION",
			Description: "The report contains no trustee opinion on the proposal",
			Severity:    domain.SeverityHigh,
			Regulation:  "BIA Section 59(2)",
			Impact:      "Creditors lack the trustee's assessment of fairness and viability",
			Solution:    "State the trustee's opinion on whether the proposal is advantageous",
		})
	}
	if !containsAny(norm, []string{"cause", "causes of insolvency", "financial difficulty"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_INSOLVENCY_CAUSES",
			Description: "Causes of the debtor's insolvency are not reported",
			Severity:    domain.SeverityMedium,
			Regulation:  "BIA Section 50(10)(b)",
			Impact:      "The report is incomplete for the creditors' meeting",
			Solution:    "Describe the causes of the debtor's financial difficulty",
		})
	}
	if !containsAny(norm, []string{"meeting"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "INCOMPLETE_MEETING_DETAILS",
			Description: "Details of the meeting of creditors are missing",
			Severity:    domain.SeverityMedium,
			Regulation:  "BIA Section 51",
			Impact:      "Creditors cannot be convened without meeting particulars",
			Solution:    "Include the time, place and manner of the creditors' meeting",
		})
	}
	if !containsAny(norm, signatureMarkers) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_TRUSTEE_SIGNATURE",
			Description: "Trustee signature missing from the report",
			Severity:    domain.SeverityCritical,
			Regulation:  "BIA Section 59",
			Impact:      "An unsigned report cannot be filed",
			Solution:    "Obtain the trustee's signature before filing",
			Deadline:    "BEFORE_FILING",
		})
	}
	return issues
}

// form79Rules covers the Statement of Affairs.
func form79Rules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, []string{"asset"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_ASSET_LISTING",
			Description: "No assets are listed in the statement of affairs",
			Severity:    domain.SeverityCritical,
			Regulation:  "BIA Section 158(d)",
			Impact:      "The estate cannot be administered without a full asset disclosure",
			Solution:    "List all assets with estimated realizable values",
		})
	}
	if !containsAny(norm, []string{"liabilit"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_LIABILITY_LISTING",
			Description: "No liabilities are listed in the statement of affairs",
			Severity:    domain.SeverityCritical,
			Regulation:  "BIA Section 158(d)",
			Impact:      "Creditor claims cannot be reconciled against disclosed debts",
			Solution:    "List all liabilities with creditor names and amounts",
		})
	}
	if !containsAny(norm, []string{"sworn", "oath", "solemnly declare", "affirmed"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_SWORN_DECLARATION",
			Description: "The statement is not sworn or affirmed",
			Severity:    domain.SeverityHigh,
			Regulation:  "BIA Section 158",
			Impact:      "An unsworn statement of affairs has no evidentiary weight",
			Solution:    "Have the debtor swear or affirm the statement before a commissioner",
		})
	}
	if !containsAny(norm, signatureMarkers) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_DEBTOR_SIGNATURE",
			Description: "Debtor signature missing",
			Severity:    domain.SeverityCritical,
			Regulation:  "BIA Section 158(d)",
			Impact:      "An unsigned statement cannot be filed",
			Solution:    "Obtain the debtor's signature before filing",
			Deadline:    "BEFORE_FILING",
		})
	}
	return issues
}

// genericFormRules applies to any other OSB form number.
func genericFormRules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, signatureMarkers) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_SIGNATURE",
			Description: "No signature found on the form",
			Severity:    domain.SeverityHigh,
			Impact:      "Unsigned forms are generally not accepted for filing",
			Solution:    "Obtain the required signature",
		})
	}
	if !containsAny(norm, []string{"dated", "date"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_DATE",
			Description: "The form is not dated",
			Severity:    domain.SeverityMedium,
			Impact:      "Filing and limitation periods cannot be established",
			Solution:    "Date the form at signing",
		})
	}
	if !containsAny(norm, []string{"estate no", "estate number"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_ESTATE_NUMBER",
			Description: "No estate number is referenced",
			Severity:    domain.SeverityLow,
			Impact:      "The filing may be matched to the wrong estate",
			Solution:    "Record the estate number assigned by the official receiver",
		})
	}
	return issues
}
