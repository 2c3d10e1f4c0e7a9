package response

import "recarma/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	Role        string                      `json:"role"`
	User        *queries.AuthorizedUserView `json:"user"`
}
