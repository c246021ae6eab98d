package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustDefaultRegistry_CompilesAll(t *testing.T) {
	r := MustDefaultRegistry()
	assert.Len(t, r.Names(), len(RequestSchemas))
	assert.Contains(t, r.Names(), SchemaPersonalInfo)
}

func TestRegistry_ValidateJSON(t *testing.T) {
	r := MustDefaultRegistry()

	tests := []struct {
		name      string
		schema    string
		body      string
		wantValid bool
		wantField string
	}{
		{
			name:      "personal patch ok",
			schema:    SchemaPersonalInfo,
			body:      `{"firstName":"Ada","address":{"city":"London"}}`,
			wantValid: true,
		},
		{
			name:      "personal patch unknown field",
			schema:    SchemaPersonalInfo,
			body:      `{"nickname":"A"}`,
			wantValid: false,
		},
		{
			name:      "academic gpa wrong type",
			schema:    SchemaAcademicInfo,
			body:      `{"gpa":"3.9"}`,
			wantValid: false,
			wantField: "gpa",
		},
		{
			name:      "academic gpa null clears",
			schema:    SchemaAcademicInfo,
			body:      `{"gpa":null}`,
			wantValid: true,
		},
		{
			name:      "document bad type",
			schema:    SchemaDocument,
			body:      `{"name":"Transcript","type":"selfie"}`,
			wantValid: false,
			wantField: "type",
		},
		{
			name:      "note missing content",
			schema:    SchemaNote,
			body:      `{"timestamp":12.5}`,
			wantValid: false,
		},
		{
			name:      "chat empty content",
			schema:    SchemaChatMessage,
			body:      `{"content":""}`,
			wantValid: false,
			wantField: "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.ValidateJSON(tt.schema, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				require.NotEmpty(t, res.Errors)
				if tt.wantField != "" {
					assert.Equal(t, tt.wantField, res.Errors[0].Field)
				}
				assert.NotEmpty(t, res.Error())
			}
		})
	}
}

func TestRegistry_ValidateInput(t *testing.T) {
	r := MustDefaultRegistry()
	res, err := r.ValidateInput(SchemaProgress, map[string]interface{}{
		"currentTime": 30.0,
		"duration":    120.0,
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestRegistry_Errors(t *testing.T) {
	r := MustDefaultRegistry()

	_, err := r.ValidateJSON("missing", []byte(`{}`))
	assert.ErrorContains(t, err, "unknown schema")

	_, err = r.ValidateJSON(SchemaDetails, []byte(`not json`))
	assert.Error(t, err)

	_, err = NewRegistry(map[string]string{"broken": `{"type": 7}`})
	assert.Error(t, err)
}
