package dto

type NoteCreated struct {
	NoteId       string `json:"noteId"`
	Title        string `json:"title"`
	OriginalScan string `json:"originalScan"`
	FromUser     string `json:"fromUser"`
	UploadedBy   string `json:"uploadedBy"`
	IngestionId  string `json:"ingestionId"`
}
