package dto

// FileMetadata describes a blob handed to the file store.
type FileMetadata struct {
	Storage          string `json:"storage"`
	FilenameDownload string `json:"filename_download"`
	UploadedBy       string `json:"uploaded_by"`
	Type             string `json:"type"`
	Title            string `json:"title"`
}
