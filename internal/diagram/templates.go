package diagram

import "strings"

// Canned diagrams for the fresh-generation fallback path.

const medicalTemplate = `erDiagram
    PATIENT {
        int patient_id PK
        string name
        date date_of_birth
        string phone
    }
    DOCTOR {
        int doctor_id PK
        string name
        string specialty
    }
    APPOINTMENT {
        int appointment_id PK
        date appointment_date
        string status
        int patient_id FK
        int doctor_id FK
    }
    PATIENT ||--o{ APPOINTMENT : books
    DOCTOR ||--o{ APPOINTMENT : conducts`

const commerceTemplate = `erDiagram
    USER {
        int user_id PK
        string name
        string email
    }
    PRODUCT {
        int product_id PK
        string name
        decimal price
        int stock
    }
    ORDER {
        int order_id PK
        timestamp order_date
        string status
        decimal total_amount
        int user_id FK
        int product_id FK
    }
    USER ||--o{ ORDER : places
    PRODUCT ||--o{ ORDER : included_in`

const educationTemplate = `erDiagram
    STUDENT {
        int student_id PK
        string name
        string email
    }
    COURSE {
        int course_id PK
        string title
        int credits
    }
    ENROLLMENT {
        int enrollment_id PK
        date enrolled_at
        string grade
        int student_id FK
        int course_id FK
    }
    STUDENT ||--o{ ENROLLMENT : registers
    COURSE ||--o{ ENROLLMENT : offers`

const genericTemplate = `erDiagram
    USER {
        int user_id PK
        string name
        string email
        timestamp created_at
    }`

// templateRules is evaluated first-match-wins, medical before commerce
// before education; anything else falls through to the generic template.
var templateRules = []struct {
	keywords []string
	diagram  string
}{
	{
		keywords: []string{"hospital", "medical", "clinic", "doctor", "patient", "health", "pharmacy"},
		diagram:  medicalTemplate,
	},
	{
		keywords: []string{"shop", "store", "ecommerce", "e-commerce", "commerce", "retail", "inventory", "marketplace", "sales"},
		diagram:  commerceTemplate,
	},
	{
		keywords: []string{"school", "university", "college", "education", "student", "course"},
		diagram:  educationTemplate,
	},
}

// SelectTemplate picks a canned diagram by scanning the user text for
// domain keywords in priority order.
func SelectTemplate(userText string) string {
	lower := strings.ToLower(userText)
	for _, rule := range templateRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.diagram
			}
		}
	}
	return genericTemplate
}
