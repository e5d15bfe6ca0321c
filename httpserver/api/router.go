package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/httpserver/models"
	"github.com/n0rdy/mockdata/httpserver/utils"
	"github.com/n0rdy/mockdata/httpserver/utils/xmlp"
	"github.com/n0rdy/mockdata/logger"
	"github.com/rs/cors"
	"gopkg.in/yaml.v3"
)

type MockdataRouter struct {
	shutdownCh     chan struct{}
	gen            *generator.Generator
	info           models.InfoResponse
	openApiContent []byte
	openApiDoc     *openapi3.T
}

// NewMockdataRouter fails if openApiContent is not a valid OpenAPI 3 document.
func NewMockdataRouter(
	gen *generator.Generator,
	info models.InfoResponse,
	openApiContent []byte,
	shutdownCh chan struct{},
) (*MockdataRouter, error) {
	doc, err := LoadOpenApiDoc(openApiContent)
	if err != nil {
		return nil, err
	}

	return &MockdataRouter{
		shutdownCh:     shutdownCh,
		gen:            gen,
		info:           info,
		openApiContent: openApiContent,
		openApiDoc:     doc,
	}, nil
}

func (mr *MockdataRouter) NewRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(cors.AllowAll().Handler)
	router.Use(Logger)

	router.Route(utils.MockdataApiPath, func(r chi.Router) {
		r.Get("/person", mr.person)
		r.Get("/people", mr.people)
		r.Get("/name", mr.name)
		r.Get("/address", mr.address)
		r.Get("/state", mr.state)
		r.Get("/phone", mr.phone)
		r.Get("/ssn", mr.ssn)
		r.Get("/internet", mr.internet)
		r.Get("/credit-card", mr.creditCard)
		r.Get("/bank-account", mr.bankAccount)
		r.Get("/driver-license", mr.driverLicense)
		r.Get("/info", mr.referenceDataInfo)
		r.Get("/openapi.yaml", mr.openApi)

		r.Route("/admin", func(r chi.Router) {
			r.Delete("/shutdown", mr.shutdown)
		})
	})

	router.Get("/healthcheck", mr.healthCheck)
	return router
}

func (mr *MockdataRouter) person(w http.ResponseWriter, req *http.Request) {
	state, err := stateParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	person, err := mr.gen.Person(state)
	mr.send(w, req, personXmlRoot, person, err)
}

func (mr *MockdataRouter) people(w http.ResponseWriter, req *http.Request) {
	state, err := stateParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}
	count, err := countParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	people := make([]generator.Person, 0, count)
	for i := 0; i < count; i++ {
		person, err := mr.gen.Person(state)
		if err != nil {
			mr.sendGeneratorErrorResponse(w, err)
			return
		}
		people = append(people, person)
	}
	mr.sendListResponse(w, req, peopleXmlRoot, personXmlRoot, people)
}

func (mr *MockdataRouter) name(w http.ResponseWriter, req *http.Request) {
	gender, err := genderParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	name, err := mr.gen.FullName(gender)
	mr.send(w, req, nameXmlRoot, name, err)
}

func (mr *MockdataRouter) address(w http.ResponseWriter, req *http.Request) {
	state, err := stateParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}
	zip, err := zipParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	address, err := mr.gen.Address(state, zip)
	mr.send(w, req, addressXmlRoot, address, err)
}

func (mr *MockdataRouter) state(w http.ResponseWriter, req *http.Request) {
	state, err := stateParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	st, err := mr.gen.State(state)
	mr.send(w, req, stateXmlRoot, st, err)
}

func (mr *MockdataRouter) phone(w http.ResponseWriter, req *http.Request) {
	state, err := stateParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}
	zip, err := zipParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}
	tollFree, err := boolParam(req, utils.TollFreeQueryParam, false)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	phone, err := mr.gen.Phone(state, zip, tollFree)
	mr.send(w, req, utils.DefaultXmlRootEl, valueResponse(phone), err)
}

func (mr *MockdataRouter) ssn(w http.ResponseWriter, req *http.Request) {
	state, err := stateParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	ssn, err := mr.gen.SSN(state)
	mr.send(w, req, utils.DefaultXmlRootEl, valueResponse(ssn), err)
}

func (mr *MockdataRouter) internet(w http.ResponseWriter, req *http.Request) {
	internet, err := mr.gen.Internet(nil, "")
	mr.send(w, req, internetXmlRoot, internet, err)
}

func (mr *MockdataRouter) creditCard(w http.ResponseWriter, req *http.Request) {
	weighted, err := boolParam(req, utils.WeightedQueryParam, true)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}
	mr.send(w, req, creditCardXmlRoot, mr.gen.CreditCard(weighted), nil)
}

func (mr *MockdataRouter) bankAccount(w http.ResponseWriter, req *http.Request) {
	mr.send(w, req, bankAccountXmlRoot, mr.gen.BankAccount(), nil)
}

func (mr *MockdataRouter) driverLicense(w http.ResponseWriter, req *http.Request) {
	state, err := stateParam(req)
	if err != nil {
		mr.sendBadRequestResponse(w, err)
		return
	}

	dln, err := mr.gen.DriverLicense(state, 0, 0)
	mr.send(w, req, driverLicenseXmlRoot, dln, err)
}

func (mr *MockdataRouter) referenceDataInfo(w http.ResponseWriter, req *http.Request) {
	mr.send(w, req, infoXmlRoot, mr.info, nil)
}

func (mr *MockdataRouter) openApi(w http.ResponseWriter, req *http.Request) {
	if len(mr.openApiContent) == 0 {
		mr.sendJsonErrorResponse(w, http.StatusNotFound, utils.ErrorOpenApiDocumentNotFound, utils.ErrorCodeOpenApiDocumentMissing)
		return
	}

	w.Header().Set("Content-Type", utils.YamlMediaType)
	w.WriteHeader(http.StatusOK)
	w.Write(mr.openApiContent)
}

func (mr *MockdataRouter) healthCheck(w http.ResponseWriter, req *http.Request) {
	mr.sendResponse(w, req, http.StatusOK, healthXmlRoot, "", healthOk)
}

func (mr *MockdataRouter) shutdown(w http.ResponseWriter, req *http.Request) {
	mr.shutdownCh <- struct{}{}
	mr.sendNoContentResponse(w)
}

func (mr *MockdataRouter) send(w http.ResponseWriter, req *http.Request, xmlRoot string, payload interface{}, err error) {
	if err != nil {
		mr.sendGeneratorErrorResponse(w, err)
		return
	}
	mr.sendResponse(w, req, http.StatusOK, xmlRoot, "", payload)
}

func (mr *MockdataRouter) sendListResponse(w http.ResponseWriter, req *http.Request, xmlRoot string, xmlItem string, payload interface{}) {
	mr.sendResponse(w, req, http.StatusOK, xmlRoot, xmlItem, payload)
}

func (mr *MockdataRouter) sendResponse(w http.ResponseWriter, req *http.Request, httpCode int, xmlRoot string, xmlItem string, payload interface{}) {
	mediaType, ok := utils.NegotiateMediaType(req.Header.Get("Accept"))
	if !ok {
		mr.sendNotAcceptableResponse(w)
		return
	}

	var respBody []byte
	var err error
	switch mediaType {
	case utils.XmlMediaType:
		respBody, err = xmlp.Marshal(payload, xmlRoot, xmlItem)
	case utils.YamlMediaType:
		respBody, err = yaml.Marshal(payload)
	default:
		respBody, err = json.Marshal(payload)
	}
	if err != nil {
		logger.Error("sendResponse: failed to marshal response body as "+mediaType, err)
		mr.sendJsonErrorResponse(w, http.StatusInternalServerError, utils.ErrorResponseMarshalling, utils.ErrorCodeResponseMarshalling)
		return
	}

	w.Header().Set("Content-Type", mediaType)
	w.WriteHeader(httpCode)
	w.Write(respBody)
}

func (mr *MockdataRouter) sendGeneratorErrorResponse(w http.ResponseWriter, err error) {
	httpCode, errResp := errorResponseFor(err)
	if httpCode == http.StatusInternalServerError {
		logger.Error("generator failed", err)
	} else {
		logger.Debug("generator lookup failed: " + err.Error())
	}
	mr.sendJsonErrorResponse(w, httpCode, errResp.Message, errResp.Code)
}

func (mr *MockdataRouter) sendBadRequestResponse(w http.ResponseWriter, err error) {
	var qpErr *queryParamError
	if !errors.As(err, &qpErr) {
		mr.sendGeneratorErrorResponse(w, err)
		return
	}
	mr.sendJsonErrorResponse(w, http.StatusBadRequest, qpErr.Error(), utils.ErrorCodeInvalidQueryParam)
}

func (mr *MockdataRouter) sendNotAcceptableResponse(w http.ResponseWriter) {
	mr.sendJsonErrorResponse(
		w,
		http.StatusNotAcceptable,
		fmt.Sprintf(utils.ErrorNotAcceptable, strings.Join(utils.SupportedMediaTypes(), ", ")),
		utils.ErrorCodeNotAcceptable,
	)
}

func (mr *MockdataRouter) sendNoContentResponse(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (mr *MockdataRouter) sendJsonErrorResponse(w http.ResponseWriter, httpCode int, message string, code string) {
	respBody, err := json.Marshal(models.ErrorResponse{Message: message, Code: code})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", utils.JsonMediaType)
	w.WriteHeader(httpCode)
	w.Write(respBody)
}
