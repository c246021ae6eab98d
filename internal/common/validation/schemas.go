package validation

// Schema names used by the API layer.
const (
	SchemaPersonalInfo = "personalInfo"
	SchemaAcademicInfo = "academicInfo"
	SchemaDetails      = "details"
	SchemaDocument     = "document"
	SchemaEssay        = "essay"
	SchemaEssayUpdate  = "essayUpdate"
	SchemaNote         = "note"
	SchemaNoteUpdate   = "noteUpdate"
	SchemaProgress     = "progress"
	SchemaChatMessage  = "chatMessage"
	SchemaNewForm      = "newForm"
)

const stringList = `{"type": "array", "items": {"type": "string"}}`

// RequestSchemas are the JSON schemas for request bodies. Section patches
// reject unknown fields so a typo never silently drops data.
var RequestSchemas = map[string]string{
	SchemaPersonalInfo: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"firstName":   {"type": "string"},
			"lastName":    {"type": "string"},
			"email":       {"type": "string"},
			"phone":       {"type": "string"},
			"dateOfBirth": {"type": "string"},
			"citizenship": {"type": "string"},
			"address": {
				"type": "object",
				"additionalProperties": false,
				"properties": {
					"street":  {"type": "string"},
					"city":    {"type": "string"},
					"state":   {"type": "string"},
					"zipCode": {"type": "string"},
					"country": {"type": "string"}
				}
			},
			"emergencyContact": {
				"type": "object",
				"additionalProperties": false,
				"properties": {
					"name":         {"type": "string"},
					"relationship": {"type": "string"},
					"phone":        {"type": "string"}
				}
			}
		}
	}`,

	SchemaAcademicInfo: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"currentSchool":      {"type": "string"},
			"gpa":                {"type": ["number", "null"]},
			"expectedGraduation": {"type": "string"},
			"coursework":         ` + stringList + `,
			"honors":             ` + stringList + `,
			"extracurriculars":   ` + stringList + `
		}
	}`,

	SchemaDetails: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"collegeName": {"type": "string"},
			"program":     {"type": "string"}
		}
	}`,

	SchemaDocument: `{
		"type": "object",
		"required": ["name", "type"],
		"properties": {
			"name":     {"type": "string", "minLength": 1},
			"type":     {"enum": ["transcript", "recommendation", "certificate", "essay", "other"]},
			"fileName": {"type": "string"},
			"fileSize": {"type": "integer", "minimum": 0},
			"url":      {"type": "string"}
		}
	}`,

	SchemaEssay: `{
		"type": "object",
		"required": ["prompt"],
		"properties": {
			"prompt":   {"type": "string", "minLength": 1},
			"content":  {"type": "string"},
			"maxWords": {"type": "integer", "minimum": 0}
		}
	}`,

	SchemaEssayUpdate: `{
		"type": "object",
		"required": ["content"],
		"properties": {
			"content": {"type": "string"}
		}
	}`,

	SchemaNote: `{
		"type": "object",
		"required": ["timestamp", "content"],
		"properties": {
			"timestamp": {"type": "number", "minimum": 0},
			"content":   {"type": "string"}
		}
	}`,

	SchemaNoteUpdate: `{
		"type": "object",
		"required": ["content"],
		"properties": {
			"content": {"type": "string"}
		}
	}`,

	SchemaProgress: `{
		"type": "object",
		"required": ["currentTime", "duration"],
		"properties": {
			"currentTime": {"type": "number", "minimum": 0},
			"duration":    {"type": "number", "minimum": 0}
		}
	}`,

	SchemaChatMessage: `{
		"type": "object",
		"required": ["content"],
		"properties": {
			"content": {"type": "string", "minLength": 1}
		}
	}`,

	SchemaNewForm: `{
		"type": "object",
		"properties": {
			"draftId":     {"type": "string"},
			"collegeName": {"type": "string"},
			"program":     {"type": "string"}
		}
	}`,
}
