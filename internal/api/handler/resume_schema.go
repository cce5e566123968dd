package handler

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type submittedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
