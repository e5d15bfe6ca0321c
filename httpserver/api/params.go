package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/n0rdy/mockdata/httpserver/utils"
	"github.com/n0rdy/mockdata/refdata"
)

var (
	stateCodeRegex = regexp.MustCompile(`^[A-Za-z]{2}$`)
	zipRegex       = regexp.MustCompile(`^[0-9]{5}$`)
)

type queryParamError struct {
	param  string
	reason string
}

func (e *queryParamError) Error() string {
	return fmt.Sprintf(utils.ErrorInvalidQueryParam, e.param, e.reason)
}

func stateParam(req *http.Request) (string, error) {
	state := strings.TrimSpace(req.URL.Query().Get(utils.StateQueryParam))
	if state == "" {
		return "", nil
	}
	if !stateCodeRegex.MatchString(state) {
		return "", &queryParamError{param: utils.StateQueryParam, reason: "expected a two-letter state code"}
	}
	return strings.ToUpper(state), nil
}

func zipParam(req *http.Request) (string, error) {
	zip := strings.TrimSpace(req.URL.Query().Get(utils.ZipQueryParam))
	if zip == "" {
		return "", nil
	}
	if !zipRegex.MatchString(zip) {
		return "", &queryParamError{param: utils.ZipQueryParam, reason: "expected a five-digit zip code"}
	}
	return zip, nil
}

func genderParam(req *http.Request) (refdata.Gender, error) {
	gender := strings.ToUpper(strings.TrimSpace(req.URL.Query().Get(utils.GenderQueryParam)))
	if gender == "" {
		return "", nil
	}
	if !refdata.Gender(gender).Valid() {
		return "", &queryParamError{param: utils.GenderQueryParam, reason: "expected F or M"}
	}
	return refdata.Gender(gender), nil
}

func countParam(req *http.Request) (int, error) {
	raw := strings.TrimSpace(req.URL.Query().Get(utils.CountQueryParam))
	if raw == "" {
		return utils.DefaultCount, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 || count > utils.MaxCount {
		return 0, &queryParamError{param: utils.CountQueryParam, reason: fmt.Sprintf("expected an integer in range [1, %d]", utils.MaxCount)}
	}
	return count, nil
}

func boolParam(req *http.Request, name string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(req.URL.Query().Get(name))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &queryParamError{param: name, reason: "expected true or false"}
	}
	return value, nil
}
