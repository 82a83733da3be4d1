package dto

import "github.com/go-playground/validator/v10"

// validate reuses the binding tags so the service layer can re-check input
// without going through gin.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,min=5,max=100"`
	Content  string `json:"content" binding:"required,min=20,max=5000"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

func (r CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePostRequest replaces all three author-editable fields at once; the
// edit form always submits the full set.
type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required,min=5,max=100"`
	Content  string `json:"content" binding:"required,min=20,max=5000"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

func (r UpdatePostRequest) Validate() error {
	return validate.Struct(r)
}

type GetPostsRequest struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset"`
}
