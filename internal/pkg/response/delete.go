package response

// DeleteResponse is the standard body for delete endpoints.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// NewDeleteResponse builds a successful delete acknowledgement.
func NewDeleteResponse(message, id string) DeleteResponse {
	return DeleteResponse{Success: true, Message: message, ID: id}
}
