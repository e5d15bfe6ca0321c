package utils

const (
	// mockdata API error messages
	ErrorInvalidQueryParam       = "mockdata: invalid query param [%s]: %s"
	ErrorNotFoundReferenceData   = "mockdata: no reference data matches the request: %s"
	ErrorNotAcceptable           = "mockdata: media type not supported, the available ones are [%s]"
	ErrorResponseMarshalling     = "mockdata: marshalling response"
	ErrorInternalServerError     = "mockdata: internal server error"
	ErrorOpenApiDocumentNotFound = "mockdata: OpenAPI document is not available"

	// mockdata API error codes
	ErrorCodeInvalidQueryParam      = "mockdata.bad_request.query_param"
	ErrorCodeNotFoundReferenceData  = "mockdata.not_found.reference_data"
	ErrorCodeNotAcceptable          = "mockdata.not_acceptable.media_type"
	ErrorCodeResponseMarshalling    = "mockdata.internal.response_body_marshaling"
	ErrorCodeInternalServerError    = "mockdata.internal.default"
	ErrorCodeOpenApiDocumentMissing = "mockdata.not_found.openapi_document"

	// query params
	StateQueryParam     = "state"
	ZipQueryParam       = "zip"
	GenderQueryParam    = "gender"
	CountQueryParam     = "count"
	TollFreeQueryParam  = "toll_free"
	WeightedQueryParam  = "weighted"

	// media types
	JsonMediaType = "application/json"
	XmlMediaType  = "application/xml"
	YamlMediaType = "application/yaml"

	// other:
	MockdataApiPath  = "/api/v1/mockdata"
	RequestIdHeader  = "X-Request-Id"
	DefaultCount     = 10
	MaxCount         = 100
	DefaultXmlRootEl = "response"
)
