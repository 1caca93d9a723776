// Package clientsession documents the browser-side session contract.
//
// The server keeps no session state beyond the signed token. The web
// client persists everything else in localStorage under the keys below
// and replays it across page loads. Nothing read back from this store
// can be trusted server-side; the token signature is the only
// authoritative input.
package clientsession

import (
	"fmt"

	"campus/internal/domain/entity"
)

// Well-known localStorage keys used by the web client.
const (
	// KeyToken holds the raw bearer token returned by signup and login.
	KeyToken = "token"

	// KeyUser holds the StoredUser JSON for the signed-in identity.
	KeyUser = "user"
)

// EnrollmentsKey returns the per-account key under which the client keeps
// its own enrollment list. The list never round-trips through the server.
func EnrollmentsKey(email string) string {
	return fmt.Sprintf("enrolledCourses_%s", email)
}

// CourseDetailsKey returns the key under which the client caches a single
// course payload from the catalog.
func CourseDetailsKey(courseID int) string {
	return fmt.Sprintf("courseDetails_%d", courseID)
}

// StoredUser is the JSON shape the client persists under KeyUser. It
// mirrors the user object in auth responses.
type StoredUser struct {
	ID       string      `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"fullName"`
	Role     entity.Role `json:"role"`
}

// StoredEnrollment is one element of the client's enrollment list. It
// mirrors the enrollment acknowledgement payload.
type StoredEnrollment struct {
	UserID     string `json:"userId"`
	CourseID   int    `json:"courseId"`
	CourseName string `json:"courseName"`
	Instructor string `json:"instructor"`
	EnrolledAt string `json:"enrolledAt"`
}
