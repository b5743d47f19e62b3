package handler

type addBookRequest struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author" validate:"required"`
}
