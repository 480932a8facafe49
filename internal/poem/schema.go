package poem

// Field types used by Schema. Only what the poem contract needs.
const (
	FieldString = "string"
	FieldObject = "object"
)

// Schema is a backend-neutral description of the JSON object the model must
// return. Backends translate it to their own schema types.
type Schema struct {
	Type        string
	Description string
	Properties  map[string]*Schema
	// Order fixes the property order for backends that honour it.
	Order    []string
	Required []string
}

// ResponseSchema is the two-field contract every generation is constrained to.
func ResponseSchema() *Schema {
	return &Schema{
		Type: FieldObject,
		Properties: map[string]*Schema{
			"title": {
				Type:        FieldString,
				Description: "Một tiêu đề ngắn gọn, phù hợp và sáng tạo cho bài thơ.",
			},
			"content": {
				Type: FieldString,
				Description: "Nội dung đầy đủ của bài thơ được tạo ra theo các yêu cầu đã cho. " +
					"Giữ nguyên các ký tự xuống dòng (\\n) để phân tách các dòng thơ.",
			},
		},
		Order:    []string{"title", "content"},
		Required: []string{"title", "content"},
	}
}
