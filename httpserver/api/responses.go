package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/httpserver/models"
	"github.com/n0rdy/mockdata/httpserver/utils"
)

const (
	personXmlRoot        = "person"
	peopleXmlRoot        = "people"
	nameXmlRoot          = "name"
	addressXmlRoot       = "address"
	stateXmlRoot         = "state"
	internetXmlRoot      = "internet"
	creditCardXmlRoot    = "credit_card"
	bankAccountXmlRoot   = "bank_account"
	driverLicenseXmlRoot = "driver_license"
	infoXmlRoot          = "info"
	healthXmlRoot        = "health"
)

var (
	healthOk = models.HealthResponse{Status: "OK"}
)

// valueResponse wraps scalar results such as a phone number or an SSN.
func valueResponse(value interface{}) map[string]interface{} {
	return map[string]interface{}{"value": value}
}

// errorResponseFor maps a generator error to the HTTP code and body it is reported with.
func errorResponseFor(err error) (int, models.ErrorResponse) {
	if errors.Is(err, generator.ErrLookupFailure) {
		return http.StatusNotFound, models.ErrorResponse{
			Message: fmt.Sprintf(utils.ErrorNotFoundReferenceData, err.Error()),
			Code:    utils.ErrorCodeNotFoundReferenceData,
		}
	}
	return http.StatusInternalServerError, models.ErrorResponse{
		Message: utils.ErrorInternalServerError,
		Code:    utils.ErrorCodeInternalServerError,
	}
}
