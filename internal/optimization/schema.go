package optimization

import "github.com/google/generative-ai-go/genai"

// CvDataSchema is the structured-output schema the generation capability is
// constrained to. It mirrors internal/schemas/cv_data.schema.json; the JSON
// schema remains the defensive source of truth when parsing the response.
func CvDataSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"fullName": {Type: genai.TypeString},
			"contactInfo": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email":    {Type: genai.TypeString},
					"phone":    {Type: genai.TypeString},
					"linkedin": {Type: genai.TypeString},
					"location": {Type: genai.TypeString},
				},
				Required: []string{"email", "phone", "location"},
			},
			"summary": {Type: genai.TypeString},
			"workExperience": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"jobTitle": {Type: genai.TypeString},
						"company":  {Type: genai.TypeString},
						"location": {Type: genai.TypeString},
						"dates":    {Type: genai.TypeString},
						"responsibilities": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"jobTitle", "company", "dates", "responsibilities"},
				},
			},
			"education": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"institution": {Type: genai.TypeString},
						"degree":      {Type: genai.TypeString},
						"dates":       {Type: genai.TypeString},
					},
					Required: []string{"institution", "degree", "dates"},
				},
			},
			"skills": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"fullName", "contactInfo", "summary", "workExperience", "education", "skills"},
	}
}
