package controller

import validation "github.com/go-ozzo/ozzo-validation/v4"

const maxInputLength = 256

var textRules = []validation.Rule{
	validation.Required,
	validation.RuneLength(1, maxInputLength),
}

type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (r bookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, textRules...),
		validation.Field(&r.Author, textRules...),
	)
}

type readerRequest struct {
	Name string `json:"name"`
}

func (r readerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, textRules...),
	)
}

type loanRequest struct {
	Reader string `json:"reader"`
	Title  string `json:"title"`
}

func (r loanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Reader, textRules...),
		validation.Field(&r.Title, textRules...),
	)
}

// fileRequest allows an empty name, which selects the default file.
type fileRequest struct {
	File string `json:"file"`
}

func (r fileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.File, validation.RuneLength(0, maxInputLength)),
	)
}
