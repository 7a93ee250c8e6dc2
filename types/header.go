package types

// EmailHeader is one parsed email header summary submitted for aggregation.
// Address-bearing fields are taken verbatim: no syntax checks, no trimming,
// no case folding. Empty strings count as addresses.
//
// ID and Folder are pointers so that an absent or null field fails
// validation while a present empty string passes.
type EmailHeader struct {
	ID      *string  `json:"id" validate:"required"`
	Subject *string  `json:"subject"`
	From    *string  `json:"from"`
	To      []string `json:"to"`
	Cc      []string `json:"cc"`
	Bcc     []string `json:"bcc"`
	Date    *string  `json:"date"`
	Folder  *string  `json:"folder" validate:"required"`
}

// InputParse is the request body of the parse endpoint
type InputParse struct {
	Headers []*EmailHeader `json:"headers" validate:"required,dive,required"`
}
