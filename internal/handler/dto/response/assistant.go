package response

type ChatResponse struct {
	Reply string `json:"reply"`
}

type UploadDocumentResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
