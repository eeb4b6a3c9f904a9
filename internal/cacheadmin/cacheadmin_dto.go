package cacheadmin

type InvalidateRequest struct {
	Prefix string `json:"prefix" binding:"required"`
}

type InvalidateResponse struct {
	Prefix    string `json:"prefix"`
	Removed   int    `json:"removed"`
	Broadcast bool   `json:"broadcast"`
}
