package dto

type CourseRequest struct {
	CourseCode  string   `json:"courseCode" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Credits     int      `json:"credits" validate:"required"`
	Faculties   []string `json:"faculties" validate:"required,min=1"`
}

type CourseUpdateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Credits     int      `json:"credits" validate:"required"`
	Faculties   []string `json:"faculties" validate:"required,min=1"`
}

type RoomRequest struct {
	FloorNo   string   `json:"floorNo" validate:"required"`
	Building  string   `json:"building" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Capacity  int      `json:"capacity" validate:"required"`
	Resources []string `json:"resources"`
}

type RoomUpdateRequest struct {
	FloorNo   string   `json:"floorNo" validate:"required"`
	Building  string   `json:"building" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Capacity  int      `json:"capacity" validate:"required"`
	Resources []string `json:"resources"`
}
