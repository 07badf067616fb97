package domain

// ServiceCategories is the closed set of inquiry types offered on the
// contact form, keyed by form value.
var ServiceCategories = map[string]string{
	"general":     "General Inquiry",
	"it":          "IT Consulting",
	"engineering": "Engineering Consulting",
	"healthcare":  "Healthcare Consulting",
	"software":    "Software Consulting",
}

// ContactMessage is a validated contact-form submission. It is never
// persisted; it exists only for the duration of mail dispatch.
type ContactMessage struct {
	Name    string
	Email   string
	Service string
	Message string
}

// ServiceLabel returns the human-readable label for the selected category.
func (m ContactMessage) ServiceLabel() string {
	if label, ok := ServiceCategories[m.Service]; ok {
		return label
	}
	return m.Service
}
