package classifier

// Catalogue of the OSB prescribed forms the service recognizes. Only a
// subset has dedicated extraction schemas and risk rule sets; the rest
// still classify by number and title.
var formTitles = map[string]string{
	"1":  "Assignment for the General Benefit of Creditors",
	"21": "Certificate of Appointment",
	"31": "Proof of Claim",
	"33": "Notice of Bankruptcy and First Meeting of Creditors",
	"40": "Certificate of Discharge",
	"43": "Dividend Sheet",
	"47": "Consumer Proposal",
	"65": "Monthly Income and Expense Statement",
	"69": "Notice of Bankruptcy and Impending Automatic Discharge",
	"76": "Report of Trustee on Proposal",
	"78": "Statement of Affairs (Non-Business Bankruptcy)",
	"79": "Statement of Affairs (Business Bankruptcy)",
}

// FormTitle reports the canonical title of a known OSB form number.
func FormTitle(number string) (string, bool) {
	title, ok := formTitles[number]
	return title, ok
}

func osbDocumentType(number string) string {
	return "OSB_Form_" + number
}
