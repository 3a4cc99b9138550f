package request

import "gestao360/internal/domain/entities"

// ClientRequest is the payload for client registration. The binding tags own
// the form-level validation contract; invalid payloads never reach the use
// cases.
type ClientRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Address string `json:"address" binding:"required,min=5"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// ClientPatchRequest carries a shallow patch; absent fields stay untouched.
type ClientPatchRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,min=10"`
	Address *string `json:"address" binding:"omitempty,min=5"`
}

func (r ClientPatchRequest) ToPatch() entities.ClientPatch {
	return entities.ClientPatch{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
