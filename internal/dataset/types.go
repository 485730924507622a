package dataset

// Student is a row of the students table.
type Student struct {
	ID              int    `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	Grade           int    `json:"grade" db:"grade"`
	FavoriteSubject string `json:"favorite_subject" db:"favorite_subject"`
	Score           int    `json:"score" db:"score"`
}

// Assignment is a row of the assignments table. StudentID references Student.ID.
type Assignment struct {
	ID            int    `json:"id" db:"id"`
	StudentID     int    `json:"student_id" db:"student_id"`
	Title         string `json:"title" db:"title"`
	Score         int    `json:"score" db:"score"`
	SubmittedDate string `json:"submitted_date" db:"submitted_date"`
}

// Dataset bundles both tables.
type Dataset struct {
	Students    []Student
	Assignments []Assignment
}
