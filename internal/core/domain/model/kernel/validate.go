package kernel

import "github.com/go-playground/validator/v10"

var validate = validator.New()

const (
	mobileRule = "len=10,number"
	emailRule  = "email,max=100"
)
