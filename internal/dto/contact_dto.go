package dto

// ImportContactsRequest carries the caller's People API access token obtained
// client-side; the backend only uses it for the one import call.
type ImportContactsRequest struct {
	AccessToken string `json:"access_token"`
}

type ImportContactsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type ContactListResponse struct {
	Names []string `json:"names"`
}
