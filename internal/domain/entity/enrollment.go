package entity

import "time"

// Enrollment is an (identity, course) pair with a server timestamp. The
// server acknowledges enrollments but never persists them; the client's
// session store holds the authoritative copy and is responsible for
// de-duplicating course ids per identity.
type Enrollment struct {
	UserID     string    `json:"userId"`
	CourseID   int       `json:"courseId"`
	CourseName string    `json:"courseName"`
	Instructor string    `json:"instructor"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
