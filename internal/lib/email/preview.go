package email

// PreviewData contains sample template data for local preview/testing:
// templateName -> (templateVariableName -> exampleValue).
var PreviewData = map[string]map[string]string{
	"welcome": {
		"UserFirstName": "John",
	},
}
