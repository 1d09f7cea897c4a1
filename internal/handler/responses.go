package handler

import "courseapi/internal/model"

// UserResponse is the public view of a user. The password hash is never included.
type UserResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// CourseResponse is a course with its owner nested under "User".
type CourseResponse struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   *string       `json:"estimatedTime"`
	MaterialsNeeded *string       `json:"materialsNeeded"`
	UserID          uint          `json:"userId"`
	User            *UserResponse `json:"User"`
}

func toUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

func toCourseResponse(c *model.Course) CourseResponse {
	return CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		User:            toUserResponse(c.User),
	}
}
