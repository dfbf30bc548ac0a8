package controllers

import (
	"net/http"
	"time"

	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

const requestTimeout = 10 * time.Second

func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
