package utils

import (
	"io"
	"strings"
)

var (
	mediaTypeAliases = map[string]string{
		"application/json":   JsonMediaType,
		"text/json":          JsonMediaType,
		"application/xml":    XmlMediaType,
		"text/xml":           XmlMediaType,
		"application/yaml":   YamlMediaType,
		"application/x-yaml": YamlMediaType,
		"text/yaml":          YamlMediaType,
		"text/x-yaml":        YamlMediaType,
	}
)

// NegotiateMediaType picks the first supported media type of the Accept
// header. Missing or wildcard headers resolve to JSON.
func NegotiateMediaType(acceptHeader string) (string, bool) {
	if strings.TrimSpace(acceptHeader) == "" {
		return JsonMediaType, true
	}

	for _, mediaType := range GetAcceptHeaderMediaTypesInOrder(acceptHeader) {
		if mediaType == "*/*" || mediaType == "application/*" {
			return JsonMediaType, true
		}
		if supported, ok := mediaTypeAliases[mediaType]; ok {
			return supported, true
		}
	}
	return "", false
}

func SupportedMediaTypes() []string {
	return []string{JsonMediaType, XmlMediaType, YamlMediaType}
}

func GetAcceptHeaderMediaTypesInOrder(acceptHeader string) []string {
	mediaTypes := strings.Split(acceptHeader, ",")
	for i, mediaType := range mediaTypes {
		mediaTypes[i] = SanitizeContentType(mediaType)
	}
	return mediaTypes
}

func SanitizeContentType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}

func CloseSafe(closer io.Closer) {
	if closer != nil {
		closer.Close()
	}
}
