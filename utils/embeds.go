package utils

var (
	ConfigFileExampleContent []byte
	OpenApiSpecContent       []byte
)

func InitEmbeds(configFileExampleContent []byte, openApiSpecContent []byte) {
	ConfigFileExampleContent = configFileExampleContent
	OpenApiSpecContent = openApiSpecContent
}
