package entity

// Course is a static catalog entry. Courses are server-defined and never
// created or mutated at runtime.
type Course struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Instructor  string           `json:"instructor"`
	Description string           `json:"description"`
	Price       int              `json:"price"`
	Image       string           `json:"image"`
	Enrolled    bool             `json:"enrolled"`
	Category    string           `json:"category"`
	Duration    string           `json:"duration"`
	Level       string           `json:"level"`
	CreatedDate string           `json:"createdDate"`
	UpiID       string           `json:"upiId"`
	Materials   []CourseMaterial `json:"materials"`
}

// CourseMaterial describes a downloadable file attached to a course.
type CourseMaterial struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize string `json:"fileSize"`
}
