package placement

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
	"github.com/avelsher/estatedocs/internal/core/ports"
)

const unknownClientFolder = "Unknown Client"

// Subtype folders for financial documents; anything unrecognized lands
// in Financial/Other.
var financialFolders = map[string]string{
	"bank_statement":        "Financial/Bank_Statements",
	"credit_card_statement": "Financial/Credit_Card_Statements",
	"tax_document":          "Financial/Tax_Documents",
	"pay_stub":              "Financial/Income_Documents",
}

var categoryFolders = map[domain.DocumentCategory]string{
	domain.CategoryCreditor:       "Creditors",
	domain.CategoryIdentity:       "Identity",
	domain.CategoryLegal:          "Legal/Court_Documents",
	domain.CategoryCorrespondence: "Correspondence",
	domain.CategoryUnknown:        "Unsorted",
}

// Planner derives a suggested archival folder, generated file name and
// metadata tags. It performs no filesystem I/O.
type Planner struct {
	clock ports.Clock
}

func New(clock ports.Clock) *Planner {
	return &Planner{clock: clock}
}

func (p *Planner) Plan(cls domain.Classification, meta domain.DocumentMetadata, fileName string, riskLevel domain.RiskLevel) (domain.DocumentPlacement, error) {
	clientFolder := meta.ClientName
	if clientFolder == "" {
		clientFolder = unknownClientFolder
	}

	categoryFolder := p.categoryFolder(cls)
	generatedName := p.generatedFileName(cls, fileName)

	tags := []string{string(cls.Category), cls.DocumentType}
	if cls.FormNumber != "" {
		tags = append(tags, "Form_"+cls.FormNumber)
	}
	if riskLevel != "" {
		tags = append(tags, "Risk_"+string(riskLevel))
	}

	return domain.DocumentPlacement{
		Folder:   clientFolder,
		Category: categoryFolder,
		FileName: generatedName,
		Path:     path.Join(clientFolder, categoryFolder, generatedName),
		Tags:     tags,
	}, nil
}

func (p *Planner) categoryFolder(cls domain.Classification) string {
	switch cls.Category {
	case domain.CategoryOSBForm:
		if cls.FormNumber != "" {
			return "Forms/OSB_Forms/Form" + cls.FormNumber
		}
		return "Forms/OSB_Forms/General"
	case domain.CategoryFinancial:
		if folder, ok := financialFolders[cls.DocumentType]; ok {
			return folder
		}
		return "Financial/Other"
	default:
		if folder, ok := categoryFolders[cls.Category]; ok {
			return folder
		}
		return "Unsorted"
	}
}

// generatedFileName combines a normalized type tag with the current
// date and the original file extension.
func (p *Planner) generatedFileName(cls domain.Classification, fileName string) string {
	tag := cls.DocumentType
	if tag == "" {
		tag = "document"
	}
	tag = strings.ToLower(strings.ReplaceAll(tag, " ", "_"))

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".pdf"
	}
	return tag + "_" + p.clock.Now().Format("2006-01-02") + ext
}
