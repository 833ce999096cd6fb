package domain

// ExtractionMethod identifies the strategy that produced a result.
type ExtractionMethod string

const (
	MethodFreeCSV       ExtractionMethod = "free-csv"
	MethodFreeExcel     ExtractionMethod = "free-excel"
	MethodMistralOCR    ExtractionMethod = "mistral-ocr"
	MethodMistralText   ExtractionMethod = "mistral-text"
	MethodClaudeBedrock ExtractionMethod = "claude-bedrock"
	MethodGPT4Vision    ExtractionMethod = "gpt4-vision"
)

// ValidationSeverity classifies a failed validation rule.
type ValidationSeverity string

const (
	SeverityError   ValidationSeverity = "error"
	SeverityWarning ValidationSeverity = "warning"
)

// LogoStrategy identifies how a logo candidate was located.
type LogoStrategy string

const (
	StrategyJSONLD  LogoStrategy = "json-ld"
	StrategyMetaTag LogoStrategy = "meta-tag"
	StrategyDOMScan LogoStrategy = "dom-scan"
	StrategyFavicon LogoStrategy = "favicon"
)

// FileType is the accepted upload categories for document extraction.
type FileType string

const (
	FileTypeCSV   FileType = "csv"
	FileTypeExcel FileType = "excel"
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"csv":  FileTypeCSV,
	"xlsx": FileTypeExcel,
	"xls":  FileTypeExcel,
	"pdf":  FileTypePDF,
	"jpg":  FileTypeImage,
	"jpeg": FileTypeImage,
	"png":  FileTypeImage,
}

// ContentTypeFor maps a FileType to the MIME type sent to vendor APIs.
var ContentTypeFor = map[FileType]string{
	FileTypeCSV:   "text/csv",
	FileTypeExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypePDF:   "application/pdf",
	FileTypeImage: "image/png",
}
