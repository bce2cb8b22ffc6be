package constant

const (
	// Wizard steps
	StepUpload    = 1
	StepData      = 2
	StepAnalytics = 3
	StepHistory   = 4

	// Section keys for the extracted-data disclosure panels
	SectionNames   = "names"
	SectionEmails  = "emails"
	SectionPhones  = "phones"
	SectionClauses = "clauses"
	SectionSigners = "signers"
	SectionText    = "text"
	SectionAI      = "ai"

	// Cache key prefix for per-page AI summaries. Kept stable so a
	// reconnecting client reuses summaries from a previous tab session.
	SummaryCacheKeyPrefix = "ai_summary_page_"

	// Event bus topic for document lifecycle events
	TopicDocumentEvents = "document.events"

	// Fixed user-facing failure messages. These are surfaced verbatim,
	// regardless of the underlying transport error.
	MsgUploadFailed     = "Upload failed! Backend not responding or invalid file."
	MsgSummaryFailed    = "Failed to get AI summary."
	MsgAnswerFailed     = "Failed to get AI answer."
	MsgMissingPreview   = "Missing preview link."
	MsgNoExtractedData  = "No extracted data available. Please upload a document first."
	MsgNoHistory        = "No history found. Upload a document to see previous analyses."
	MsgNothingToPreview = "Nothing to preview."
	MsgInvalidFileType  = "Only PDF, Word, Excel, PNG, JPG files are allowed!"

	// Synthetic name given to camera captures
	CapturedImageName = "captured_image.png"
)

// AllowedUploadExtensions is the fixed allow-list checked before any
// network call. Lowercase, with leading dot.
var AllowedUploadExtensions = []string{".pdf", ".docx", ".xls", ".xlsx", ".png", ".jpg", ".jpeg"}

// SectionKeys lists every disclosure section in display order.
var SectionKeys = []string{
	SectionNames,
	SectionEmails,
	SectionPhones,
	SectionClauses,
	SectionSigners,
	SectionText,
	SectionAI,
}
